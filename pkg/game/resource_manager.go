package game

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"os"
	"sync"

	"github.com/decker502/skyfall/internal/art"
	"github.com/decker502/skyfall/pkg/components"
	"github.com/decker502/skyfall/pkg/config"
)

// ErrMissingAsset is returned when a particle image cannot be loaded or has
// no pixels. The animation cannot size its particles without it.
var ErrMissingAsset = errors.New("missing image asset")

// ResourceManager loads and caches the particle images.
//
// Images come either from a file (PNG or JPEG) or, when no path is
// configured, from the generated art in internal/art. Every failure is
// returned to the caller; nothing falls back to a zero-sized image.
//
// Usage:
//
//	rm := NewResourceManager()
//	sky, err := rm.LoadSkyArt(cfg.Assets)
//	if err != nil {
//	    log.Fatalf("asset setup failed: %v", err)
//	}
type ResourceManager struct {
	mu         sync.Mutex
	imageCache map[string]image.Image // Cache for decoded images: path -> Image
}

// NewResourceManager creates a ResourceManager with an empty cache.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]image.Image),
	}
}

// LoadImage decodes the image at path and caches it.
func (rm *ResourceManager) LoadImage(path string) (image.Image, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if cached, ok := rm.imageCache[path]; ok {
		return cached, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open image file %s: %v", ErrMissingAsset, path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image %s: %v", ErrMissingAsset, path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: image %s has no pixels", ErrMissingAsset, path)
	}

	rm.imageCache[path] = img
	return img, nil
}

// SkyArt holds the two particle images.
type SkyArt struct {
	Sun  image.Image
	Moon image.Image
}

// LoadSkyArt resolves both particle images from the asset configuration.
func (rm *ResourceManager) LoadSkyArt(assets config.AssetsConfig) (*SkyArt, error) {
	sun, err := rm.loadAsset(components.KindSun, assets.Sun)
	if err != nil {
		return nil, err
	}
	moon, err := rm.loadAsset(components.KindMoon, assets.Moon)
	if err != nil {
		return nil, err
	}
	return &SkyArt{Sun: sun, Moon: moon}, nil
}

func (rm *ResourceManager) loadAsset(kind components.ParticleKind, a config.AssetConfig) (image.Image, error) {
	if a.Path != "" {
		img, err := rm.LoadImage(a.Path)
		if err != nil {
			return nil, fmt.Errorf("%s image: %w", kind, err)
		}
		log.Printf("[ResourceManager] loaded %s image %s (%dx%d)", kind, a.Path, img.Bounds().Dx(), img.Bounds().Dy())
		return img, nil
	}

	if a.Size <= 0 {
		return nil, fmt.Errorf("%s image: %w: no path and size %d", kind, ErrMissingAsset, a.Size)
	}
	var img image.Image
	switch kind {
	case components.KindSun:
		img = art.Sun(a.Size)
	default:
		img = art.Moon(a.Size)
	}
	log.Printf("[ResourceManager] generated %s image (%dx%d)", kind, a.Size, a.Size)
	return img, nil
}

// Image returns the image for kind.
func (a *SkyArt) Image(kind components.ParticleKind) image.Image {
	if kind == components.KindMoon {
		return a.Moon
	}
	return a.Sun
}

// Images returns both images keyed by kind.
func (a *SkyArt) Images() map[components.ParticleKind]image.Image {
	images := make(map[components.ParticleKind]image.Image, len(components.ParticleKinds))
	for _, kind := range components.ParticleKinds {
		images[kind] = a.Image(kind)
	}
	return images
}

// HalfSize returns the base half-size of the image for kind.
func (a *SkyArt) HalfSize(kind components.ParticleKind) float64 {
	return art.BaseHalfSize(a.Image(kind))
}

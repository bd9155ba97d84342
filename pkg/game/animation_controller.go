package game

import (
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/decker502/skyfall/pkg/components"
	"github.com/decker502/skyfall/pkg/entities"
	"github.com/decker502/skyfall/pkg/store"
	"github.com/decker502/skyfall/pkg/systems"
	"github.com/decker502/skyfall/pkg/utils"
)

// ControllerConfig 定义动画控制器的启动参数
type ControllerConfig struct {
	// Seed 随机种子，相同的种子和调用序列产生相同的画面
	Seed int64
	// BaseSpeed 基础速度（像素/秒，已乘以屏幕密度）
	BaseSpeed float64
	// SunHalfSize / MoonHalfSize 图片基础半尺寸（最大边的一半）
	SunHalfSize  float64
	MoonHalfSize float64

	AlphaPolicy entities.AlphaPolicy
	ExitPolicy  systems.ExitPolicy

	// TimeSource 可选，默认使用系统时间
	TimeSource TimeSource
	// Random 可选，设置后忽略 Seed
	Random utils.RandomSource
}

// Stats is a point-in-time view of the controller.
type Stats struct {
	Suns     int
	Moons    int
	State    ClockState
	PlayTime time.Duration
	Recycled int
	Drawn    int
}

// AnimationController owns the clock and both particle stores and wires
// them to the motion and render systems.
//
// Control calls (AddSun, AddMoon, Pause, Resume, SetSize) may come from any
// goroutine. Frame and Draw are expected on the host's frame loop.
type AnimationController struct {
	clock   *SimulationClock
	factory *entities.ParticleFactory

	suns  *store.ParticleStore
	moons *store.ParticleStore

	motion   *systems.MotionSystem
	renderer *systems.SkyRenderSystem

	halfSizes map[components.ParticleKind]float64

	size  atomic.Uint64 // width<<32 | height
	drawn atomic.Int64

	invalidateMu sync.RWMutex
	invalidate   func()
}

// NewAnimationController creates a controller. The clock stays detached
// until OnAttach or the first AddSun/AddMoon.
func NewAnimationController(cfg ControllerConfig) *AnimationController {
	rnd := cfg.Random
	if rnd == nil {
		rnd = utils.NewSeededRandom(cfg.Seed)
	}

	c := &AnimationController{
		clock:   NewSimulationClock(cfg.TimeSource),
		factory: entities.NewParticleFactory(rnd, cfg.BaseSpeed, cfg.AlphaPolicy),
		suns:    store.NewParticleStore(components.KindSun),
		moons:   store.NewParticleStore(components.KindMoon),
		halfSizes: map[components.ParticleKind]float64{
			components.KindSun:  cfg.SunHalfSize,
			components.KindMoon: cfg.MoonHalfSize,
		},
	}

	stores := []*store.ParticleStore{c.suns, c.moons}
	c.motion = systems.NewMotionSystem(stores, c.halfSizes, cfg.ExitPolicy, c.respawn)
	c.renderer = systems.NewSkyRenderSystem(stores, c.halfSizes)

	return c
}

// OnAttach binds the clock to the host surface.
func (c *AnimationController) OnAttach() {
	if c.clock.Attach(c.onTick) {
		log.Printf("[SkyController] surface attached")
	}
}

// OnDetach unbinds the clock. Pause and Resume do nothing until the next attach.
func (c *AnimationController) OnDetach() {
	c.clock.Detach()
	log.Printf("[SkyController] surface detached")
}

// SetSize records the laid-out surface size in pixels. Negative values
// are stored as 0. Both dimensions are published together.
func (c *AnimationController) SetSize(width, height int) {
	w := uint64(max(width, 0)) & math.MaxUint32
	h := uint64(max(height, 0)) & math.MaxUint32
	c.size.Store(w<<32 | h)
}

// Size returns the last laid-out surface size.
func (c *AnimationController) Size() (int, int) {
	v := c.size.Load()
	return int(v >> 32), int(v & math.MaxUint32)
}

// OnInvalidate registers the host's redraw request hook.
func (c *AnimationController) OnInvalidate(fn func()) {
	c.invalidateMu.Lock()
	defer c.invalidateMu.Unlock()
	c.invalidate = fn
}

// AddSun spawns one sun below the view and makes sure the clock runs.
func (c *AnimationController) AddSun() {
	c.add(components.KindSun, c.suns)
}

// AddMoon spawns one moon below the view and makes sure the clock runs.
func (c *AnimationController) AddMoon() {
	c.add(components.KindMoon, c.moons)
}

func (c *AnimationController) add(kind components.ParticleKind, s *store.ParticleStore) {
	w, h := c.Size()
	p := c.factory.Create(kind, w, h, c.halfSizes[kind])
	s.Append(p)

	// Lazy start: the animation begins with the first particle
	if c.clock.State() == ClockDetached {
		c.clock.Attach(c.onTick)
	}
	log.Printf("[SkyController] added %s #%d at (%.1f, %.1f) scale=%.3f alpha=%.3f speed=%.1f",
		kind, s.Len(), p.X, p.Y(), p.Scale, p.Alpha, p.Speed)
}

// Pause freezes the animation if it is running.
func (c *AnimationController) Pause() {
	c.clock.Pause()
}

// Resume continues the animation if it is paused, without a jump.
func (c *AnimationController) Resume() {
	c.clock.Resume()
}

// TogglePause pauses a running animation or resumes a paused one.
func (c *AnimationController) TogglePause() {
	switch c.clock.State() {
	case ClockRunning:
		c.Pause()
	case ClockPaused:
		c.Resume()
	}
}

// Paused reports whether the clock is paused.
func (c *AnimationController) Paused() bool {
	return c.clock.State() == ClockPaused
}

// Frame drives one host frame.
func (c *AnimationController) Frame() {
	c.clock.Frame()
}

// Draw stamps every visible particle on surface.
func (c *AnimationController) Draw(surface systems.Surface) int {
	_, h := c.Size()
	if h <= 0 {
		return 0
	}
	n := c.renderer.Render(surface, h)
	c.drawn.Store(int64(n))
	return n
}

// Particles returns the current particles of kind.
func (c *AnimationController) Particles(kind components.ParticleKind) []*components.SkyParticle {
	if kind == components.KindMoon {
		return c.moons.Snapshot()
	}
	return c.suns.Snapshot()
}

// Stats returns counters for HUDs and logs.
func (c *AnimationController) Stats() Stats {
	return Stats{
		Suns:     c.suns.Len(),
		Moons:    c.moons.Len(),
		State:    c.clock.State(),
		PlayTime: c.clock.PlayTime(),
		Recycled: c.motion.Recycled(),
		Drawn:    int(c.drawn.Load()),
	}
}

// onTick is the clock listener.
func (c *AnimationController) onTick(_, delta time.Duration) {
	// Ignore all ticks before the surface has been laid out
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}

	c.motion.Update(float64(delta) / float64(time.Millisecond))

	c.invalidateMu.RLock()
	fn := c.invalidate
	c.invalidateMu.RUnlock()
	if fn != nil {
		fn()
	}
}

func (c *AnimationController) respawn(old *components.SkyParticle) *components.SkyParticle {
	w, h := c.Size()
	return c.factory.Create(old.Kind, w, h, c.halfSizes[old.Kind])
}

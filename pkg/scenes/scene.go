// Package scenes holds the Ebitengine scenes of the desktop and mobile hosts.
package scenes

import (
	"github.com/decker502/skyfall/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// SkyScene takes part in the whole scene lifecycle.
var (
	_ Scene            = (*SkyScene)(nil)
	_ game.Attachable  = (*SkyScene)(nil)
	_ game.LayoutAware = (*SkyScene)(nil)
)

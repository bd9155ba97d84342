package game

import (
	"github.com/decker502/skyfall/pkg/components"
	"github.com/decker502/skyfall/pkg/config"
	"github.com/decker502/skyfall/pkg/entities"
	"github.com/decker502/skyfall/pkg/systems"
)

// NewControllerConfig 根据配置文件和已加载的图片构建控制器参数
func NewControllerConfig(cfg *config.SkyConfig, sky *SkyArt) ControllerConfig {
	cc := ControllerConfig{
		Seed:         cfg.Animation.Seed,
		BaseSpeed:    cfg.BaseSpeed(),
		SunHalfSize:  sky.HalfSize(components.KindSun),
		MoonHalfSize: sky.HalfSize(components.KindMoon),
		AlphaPolicy:  entities.AlphaOvershoot,
		ExitPolicy:   systems.ExitRetain,
	}
	if cfg.Animation.AlphaPolicy == config.AlphaPolicyClamp {
		cc.AlphaPolicy = entities.AlphaClamp
	}
	if cfg.Animation.ExitPolicy == config.ExitPolicyRecycle {
		cc.ExitPolicy = systems.ExitRecycle
	}
	return cc
}

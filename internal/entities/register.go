package entities

import (
	"platformer/internal/engine"
)

// Register adds every spawnable entity to reg. Positional arguments come
// from formula names, e.g. "f.door(3)" or "f.mp(1)".
func Register(reg *engine.Registry) {
	platform := func(cfg engine.Config) (engine.Entity, error) {
		return NewMovingPlatform(cfg.Int("0", 0)), nil
	}
	reg.Register("moving_platform", platform)
	reg.Register("mp", platform)

	reg.Register("spikes", func(engine.Config) (engine.Entity, error) {
		return NewSpikes(), nil
	})
	reg.Register("switch", func(cfg engine.Config) (engine.Entity, error) {
		return NewSwitch(cfg.Int("0", 0)), nil
	})
	reg.Register("detector", func(cfg engine.Config) (engine.Entity, error) {
		return NewDetector(cfg.Int("0", 0)), nil
	})
	reg.Register("door", func(cfg engine.Config) (engine.Entity, error) {
		return NewDoor(cfg.Int("0", 0)), nil
	})
	reg.Register("auto_door", func(engine.Config) (engine.Entity, error) {
		return NewAutoDoor(), nil
	})
	reg.Register("finish", func(engine.Config) (engine.Entity, error) {
		return NewFinishLine(), nil
	})
	reg.Register("bonus", func(cfg engine.Config) (engine.Entity, error) {
		return NewBonus(cfg.String("0", "life up")), nil
	})
	reg.Register("crate", func(engine.Config) (engine.Entity, error) {
		return NewCrate(), nil
	})
	reg.Register("sign", func(cfg engine.Config) (engine.Entity, error) {
		return NewSign(cfg.String("0", cfg.String("text", ""))), nil
	})
}

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML overlay for the gameplay constants. Fields left out of
// the file keep their current values.
type Tuning struct {
	Player  PlayerConfig  `yaml:"player" json:"player"`
	Slam    SlamConfig    `yaml:"slam" json:"slam"`
	Slash   SlashConfig   `yaml:"slash" json:"slash"`
	Burst   BurstConfig   `yaml:"burst" json:"burst"`
	Boss    BossConfig    `yaml:"boss" json:"boss"`
	Missile MissileConfig `yaml:"missile" json:"missile"`
	Arena   ArenaConfig   `yaml:"arena" json:"arena"`
	Sim     SimConfig     `yaml:"sim" json:"sim"`
}

// CurrentTuning captures the active gameplay constants.
func CurrentTuning() Tuning {
	return Tuning{
		Player:  Player,
		Slam:    Slam,
		Slash:   Slash,
		Burst:   Burst,
		Boss:    Boss,
		Missile: Missile,
		Arena:   Arena,
		Sim:     Sim,
	}
}

// Apply makes t the active set of gameplay constants.
func (t Tuning) Apply() {
	Player = t.Player
	Slam = t.Slam
	Slash = t.Slash
	Burst = t.Burst
	Boss = t.Boss
	Missile = t.Missile
	Arena = t.Arena
	Sim = t.Sim
}

// ParseTuning overlays the YAML document onto base.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads a tuning overlay from disk on top of the current values.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CurrentTuning(), fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := ParseTuning(data, CurrentTuning())
	if err != nil {
		return t, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Player.MaxHealth <= 0 {
		errs = append(errs, errors.New("player.maxHealth must be positive"))
	}
	if t.Boss.MaxHealth <= 0 {
		errs = append(errs, errors.New("boss.maxHealth must be positive"))
	}
	if t.Boss.Phase2Threshold < 0 || t.Boss.Phase2Threshold > 1 {
		errs = append(errs, errors.New("boss.phase2Threshold must be within [0,1]"))
	}
	if t.Slash.MaxCombo < 1 {
		errs = append(errs, errors.New("slash.maxCombo must be at least 1"))
	}
	if t.Slash.Lifetime <= 0 || t.Burst.Lifetime <= 0 || t.Missile.Lifetime <= 0 {
		errs = append(errs, errors.New("lifetimes must be positive"))
	}
	if t.Burst.MaxCharge <= 0 || t.Burst.ChargePerHit <= 0 {
		errs = append(errs, errors.New("burst.maxCharge and burst.chargePerHit must be positive"))
	}
	if t.Missile.IntervalPhase1 <= 0 || t.Missile.IntervalPhase2 <= 0 {
		errs = append(errs, errors.New("missile intervals must be positive"))
	}
	if t.Arena.HalfSize <= 0 || t.Arena.SpaceCell <= 0 {
		errs = append(errs, errors.New("arena.halfSize and arena.spaceCell must be positive"))
	}
	if t.Sim.MaxDelta <= 0 || t.Sim.TickRate <= 0 {
		errs = append(errs, errors.New("sim.maxDelta and sim.tickRate must be positive"))
	}
	return errors.Join(errs...)
}

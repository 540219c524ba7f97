package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk override layout. Sections and keys missing from the
// file keep their current values.
type File struct {
	Window     Config           `yaml:"window"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	BulletTime BulletTimeConfig `yaml:"bullet_time"`
	Server     ServerConfig     `yaml:"server"`
	Term       TermConfig       `yaml:"term"`
	Debug      DebugConfig      `yaml:"debug"`
}

func current() File {
	return File{
		Window:     *C,
		Physics:    Physics,
		Player:     Player,
		BulletTime: BulletTime,
		Server:     Server,
		Term:       Term,
		Debug:      Debug,
	}
}

func apply(f File) {
	window := f.Window
	C = &window
	Physics = f.Physics
	Player = f.Player
	BulletTime = f.BulletTime
	Server = f.Server
	Term = f.Term
	Debug = f.Debug
}

// Parse overlays YAML data onto the current globals without touching them and
// returns the result.
func Parse(data []byte) (File, error) {
	f := current()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	if err := f.validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

func (f File) validate() error {
	var errs []error
	if f.Physics.DeltaPerInch <= 0 {
		errs = append(errs, fmt.Errorf("physics.delta_per_inch must be positive, got %v", f.Physics.DeltaPerInch))
	}
	if f.Physics.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("physics.tick_rate must be positive, got %d", f.Physics.TickRate))
	}
	if f.Player.Width <= 0 || f.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", f.Player.Width, f.Player.Height))
	}
	if f.Term.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("term.cell_size must be positive, got %v", f.Term.CellSize))
	}
	return errors.Join(errs...)
}

// LoadOverrides reads path and overlays it onto the globals. A missing file is
// not an error. On any other error the globals are left unchanged.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	apply(f)
	log.Printf("[config] loaded overrides from %s", path)
	return nil
}

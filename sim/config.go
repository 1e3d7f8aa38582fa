package sim

import (
	"os"

	log "github.com/s00500/env_logger"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the simulation. The defaults reproduce
// the historical constants; in particular a collision slack of zero and
// a unit step size.
type Config struct {
	// TatamiSize is the radius of the circular arena. A robot whose
	// center reaches it has lost the round.
	TatamiSize float64 `yaml:"tatamiSize"`
	// SumoSize is the side length of a robot's square body.
	SumoSize float64 `yaml:"sumoSize"`
	// XInitPos is the distance from the origin at which both robots
	// start, on the x axis.
	XInitPos float64 `yaml:"xInitPos"`
	// StepSize scales the angular change per tick.
	StepSize float64 `yaml:"stepSize"`
	// PushFriction divides the shove applied when two bodies overlap.
	PushFriction float64 `yaml:"pushFriction"`
	// CollisionSlack widens the contact threshold. Some variants of
	// this simulator run with a tolerance here, most with none.
	CollisionSlack float64 `yaml:"collisionSlack"`
	// Telemetry is the optional udp address frames are forwarded to.
	Telemetry string `yaml:"telemetry"`
}

func DefaultConfig() Config {
	return Config{
		TatamiSize:   20,
		SumoSize:     2.5,
		XInitPos:     10,
		StepSize:     1,
		PushFriction: 1,
	}
}

// LoadConfig reads a yaml config file, falling back to the defaults
// when path is empty or the file does not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnln("No config file at", path, "- running on defaults")
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

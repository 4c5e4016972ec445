package actor

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// DefaultSystem returns a fresh copy of the starting system data
func DefaultSystem() (*entities.System, error) {
	var sys entities.System
	if err := yaml.Unmarshal(defaultsYAML, &sys); err != nil {
		return nil, dnderr.Wrap(err, "failed to parse actor defaults")
	}
	return &sys, nil
}

// applyDefaults fills missing stats, checks and attribute blocks from the
// defaults. Values already present on the actor win.
func applyDefaults(sys *entities.System, defaults *entities.System) {
	if sys.Stats == nil {
		sys.Stats = map[string]*entities.Stat{}
	}
	for k, v := range defaults.Stats {
		if _, ok := sys.Stats[k]; !ok {
			sys.Stats[k] = v
		}
	}

	if sys.Checks == nil {
		sys.Checks = map[string]*entities.Check{}
	}
	for k, v := range defaults.Checks {
		if _, ok := sys.Checks[k]; !ok {
			sys.Checks[k] = v
		}
	}

	if sys.Attributes == nil {
		sys.Attributes = defaults.Attributes
	} else {
		if sys.Attributes.Level == nil {
			sys.Attributes.Level = defaults.Attributes.Level
		}
		if sys.Attributes.Badass == nil {
			sys.Attributes.Badass = defaults.Attributes.Badass
		}
		if sys.Attributes.Hps == nil {
			sys.Attributes.Hps = defaults.Attributes.Hps
		}
	}

	if sys.Bonus == nil {
		sys.Bonus = defaults.Bonus
	}
}

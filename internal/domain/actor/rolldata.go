package actor

import (
	"encoding/json"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// DamageRollData is the context for generated damage formulas. It is the
// roll data with every stat short name bound to that stat's modToUse, so
// the melee term @dmg is a plain number. An actor without a damage stat
// rolls it as 0.
//
// Free-form rolls use RollData, where @acc.mod and @acc.value still exist.
func DamageRollData(a *entities.Actor) (map[string]any, error) {
	data, err := RollData(a)
	if err != nil {
		return nil, err
	}

	data[entities.StatDamage] = 0
	if a.System != nil {
		for key, stat := range a.System.Stats {
			if stat == nil {
				continue
			}
			data[key] = stat.ModToUse
		}
	}

	return data, nil
}

// systemData returns a fresh generic copy of the actor's system payload.
// Nothing in the result aliases the stored actor.
func systemData(a *entities.Actor) (map[string]any, error) {
	data := make(map[string]any)
	if a.System == nil {
		return data, nil
	}

	b, err := json.Marshal(a.System)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to encode system data for actor %s", a.ID)
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, dnderr.Wrapf(err, "failed to decode system data for actor %s", a.ID)
	}

	return data, nil
}

// flatten copies each entry of src to the top level of data
func flatten(data map[string]any, src any) {
	m, ok := src.(map[string]any)
	if !ok {
		return
	}
	for k, v := range m {
		data[k] = deepCopy(v)
	}
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopy(val)
		}
		return out
	default:
		return v
	}
}

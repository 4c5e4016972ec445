package entities

import (
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// Setting keys stored per realm
const (
	SettingUsePlayerArmor   = "usePlayerArmor"
	SettingUseNpcBone       = "useNpcBone"
	SettingUsePlayerBone    = "usePlayerBone"
	SettingUseNpcEridian    = "useNpcEridian"
	SettingUsePlayerEridian = "usePlayerEridian"
)

// WorldSettings are the realm-level toggles consulted when actors are
// created. Resolve them once per operation and pass them explicitly.
type WorldSettings struct {
	UsePlayerArmor   bool `json:"usePlayerArmor"`
	UseNpcBone       bool `json:"useNpcBone"`
	UsePlayerBone    bool `json:"usePlayerBone"`
	UseNpcEridian    bool `json:"useNpcEridian"`
	UsePlayerEridian bool `json:"usePlayerEridian"`
}

// DefaultWorldSettings returns the settings a fresh realm starts with
func DefaultWorldSettings() *WorldSettings {
	return &WorldSettings{
		UsePlayerArmor: true,
	}
}

// SettingKeys lists every known setting key in a stable order
func SettingKeys() []string {
	return []string{
		SettingUsePlayerArmor,
		SettingUseNpcBone,
		SettingUsePlayerBone,
		SettingUseNpcEridian,
		SettingUsePlayerEridian,
	}
}

// Set assigns a setting by key
func (w *WorldSettings) Set(key string, value bool) error {
	switch key {
	case SettingUsePlayerArmor:
		w.UsePlayerArmor = value
	case SettingUseNpcBone:
		w.UseNpcBone = value
	case SettingUsePlayerBone:
		w.UsePlayerBone = value
	case SettingUseNpcEridian:
		w.UseNpcEridian = value
	case SettingUsePlayerEridian:
		w.UsePlayerEridian = value
	default:
		return dnderr.Validationf("unknown setting %q", key).WithMeta("setting", key)
	}
	return nil
}

// Get reads a setting by key
func (w *WorldSettings) Get(key string) (bool, error) {
	switch key {
	case SettingUsePlayerArmor:
		return w.UsePlayerArmor, nil
	case SettingUseNpcBone:
		return w.UseNpcBone, nil
	case SettingUsePlayerBone:
		return w.UsePlayerBone, nil
	case SettingUseNpcEridian:
		return w.UseNpcEridian, nil
	case SettingUsePlayerEridian:
		return w.UsePlayerEridian, nil
	default:
		return false, dnderr.Validationf("unknown setting %q", key).WithMeta("setting", key)
	}
}

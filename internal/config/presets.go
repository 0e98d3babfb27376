package config

import "sort"

// Presets are named playback speeds.
var Presets = map[string]*Config{
	"study":  {Rate: 0.5, RefreshRate: 30},
	"slow":   {Rate: 1, RefreshRate: 30},
	"normal": {Rate: DefaultRate, RefreshRate: DefaultRefreshRate},
	"fast":   {Rate: 12, RefreshRate: DefaultRefreshRate},
	"blitz":  {Rate: 30, RefreshRate: DefaultRefreshRate},
}

// GetPreset returns the default configuration with the preset's speed
// applied, or nil when the preset does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Rate = p.Rate
	cfg.RefreshRate = p.RefreshRate
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for k := range Presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

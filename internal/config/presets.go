package config

// Presets are named starting points for the interactive view.
var Presets = map[string]*Config{
	"inner": {
		Belt:      BeltConfig{Count: 0, InnerAU: DefaultBeltInner, OuterAU: DefaultBeltOuter},
		TimeScale: KnobConfig{Min: 0.25, Max: 30, Step: 0.25, Initial: 1},
		Zoom:      KnobConfig{Min: 0.05, Max: 1, Step: 0.05, Initial: 0.1},
		FrameRate: DefaultFrameRate,
	},
	"belt": {
		Belt:      BeltConfig{Count: 400, InnerAU: DefaultBeltInner, OuterAU: DefaultBeltOuter},
		TimeScale: KnobConfig{Min: 0.25, Max: 30, Step: 0.25, Initial: 5},
		Zoom:      KnobConfig{Min: 0.05, Max: 1, Step: 0.05, Initial: 0.15},
		FrameRate: DefaultFrameRate,
	},
	"outer": {
		Belt:      BeltConfig{Count: DefaultBeltCount, InnerAU: DefaultBeltInner, OuterAU: DefaultBeltOuter},
		TimeScale: KnobConfig{Min: 1, Max: 120, Step: 1, Initial: 30},
		Zoom:      KnobConfig{Min: 0.05, Max: 1, Step: 0.05, Initial: 1},
		FrameRate: DefaultFrameRate,
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

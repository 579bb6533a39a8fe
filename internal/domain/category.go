package domain

// CategoryDefinition is one configured reward tier
type CategoryDefinition struct {
	Name     string
	Enabled  bool
	Priority int
	Quality  float64
	Chance   float64
	// Conditions is nil when the category has no conditions block; such a category is never eligible.
	Conditions *CategoryConditions
	Effects    CategoryEffects
}

// CategoryConditions gate whether a category may be drawn at all
type CategoryConditions struct {
	RequireOpenWater     bool
	RequireDolphinsGrace bool
	MinLuckOfTheSea      int
	MaxLuckOfTheSea      *int
	MinLuckEffect        float64
	MaxLuckEffect        *float64
	Weather              []Weather
}

// AllowsWeather reports whether the allow-list admits w. An empty list admits everything.
func (c CategoryConditions) AllowsWeather(w Weather) bool {
	if len(c.Weather) == 0 {
		return true
	}
	for _, allowed := range c.Weather {
		if allowed == w {
			return true
		}
	}
	return false
}

// CategoryEffects is the presentation plan attached to a category.
// The core never interprets it; it travels with the result.
type CategoryEffects struct {
	Sound         *SoundEffect    `json:"sound,omitempty" yaml:"sound,omitempty"`
	Particle      *ParticleEffect `json:"particle,omitempty" yaml:"particle,omitempty"`
	Firework      *FireworkEffect `json:"firework,omitempty" yaml:"firework,omitempty"`
	PotionEffects []PotionEffect  `json:"potion_effects,omitempty" yaml:"potion_effects,omitempty"`
	Message       string          `json:"message,omitempty" yaml:"message,omitempty"`
}

type SoundEffect struct {
	Sound  string  `json:"sound" yaml:"sound"`
	Volume float64 `json:"volume" yaml:"volume"`
	Pitch  float64 `json:"pitch" yaml:"pitch"`
}

type ParticleEffect struct {
	Type   string  `json:"type" yaml:"type"`
	Count  int     `json:"count" yaml:"count"`
	Spread float64 `json:"spread" yaml:"spread"`
}

type FireworkEffect struct {
	Type       string   `json:"type" yaml:"type"`
	Colors     []string `json:"colors" yaml:"colors"`
	FadeColors []string `json:"fade_colors,omitempty" yaml:"fade_colors,omitempty"`
	Power      int      `json:"power" yaml:"power"`
	Flicker    bool     `json:"flicker" yaml:"flicker"`
	Trail      bool     `json:"trail" yaml:"trail"`
}

type PotionEffect struct {
	Effect    string `json:"effect" yaml:"effect"`
	Duration  int    `json:"duration" yaml:"duration"`
	Amplifier int    `json:"amplifier" yaml:"amplifier"`
}

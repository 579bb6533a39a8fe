package domain

// LuckResult is the snapshot of every luck contributor for one fishing attempt.
// It is computed once per attempt and passed by value; total luck is derived
// from it by the luck calculator using the active configuration.
type LuckResult struct {
	LuckOfTheSeaLevel int     `json:"luck_of_the_sea_level"`
	FortuneLevel      int     `json:"fortune_level"`
	MisfortuneLevel   int     `json:"misfortune_level"`
	ConduitLevel      int     `json:"conduit_level"`
	EquipmentLuck     float64 `json:"equipment_luck"`
	WeatherLuck       float64 `json:"weather_luck"`
	TimingLuck        float64 `json:"timing_luck"`
	ExperienceLevel   int     `json:"experience_level"`
}

// LuckBreakdown holds the per-factor bonuses after caps are applied
type LuckBreakdown struct {
	LuckOfTheSea float64 `json:"luck_of_the_sea"`
	Fortune      float64 `json:"fortune"`
	Misfortune   float64 `json:"misfortune"`
	Equipment    float64 `json:"equipment"`
	Weather      float64 `json:"weather"`
	Timing       float64 `json:"timing"`
	Experience   float64 `json:"experience"`
	Total        float64 `json:"total"`
}

// Potion returns the combined fortune and misfortune contribution
func (b LuckBreakdown) Potion() float64 {
	return b.Fortune + b.Misfortune
}

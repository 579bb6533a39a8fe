package category

// Exclusion reasons written to the attempt trace
const (
	ReasonDisabled      = "disabled"
	ReasonNoConditions  = "no conditions"
	ReasonOpenWater     = "requires open water"
	ReasonDolphinsGrace = "requires dolphins grace"
	ReasonLuckOfTheSea  = "luck of the sea"
	ReasonTotalLuck     = "total luck"
	ReasonWeather       = "weather"
	ReasonNoChance      = "adjusted chance <= 0"
)

// Trace labels
const (
	LabelIneligible = "INELIGIBLE"
	LabelEligible   = "ELIGIBLE"
	LabelHit        = "[HIT] "
	LabelMiss       = "[MISS]"
	LabelSkip       = "[SKIP]"
)

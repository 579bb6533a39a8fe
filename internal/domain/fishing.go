package domain

import "time"

// EventState is the fishing interaction state delivered by the host
type EventState string

const (
	EventFishing    EventState = "FISHING"
	EventBite       EventState = "BITE"
	EventCaughtFish EventState = "CAUGHT_FISH"
)

// SessionState is the per-player fishing session state
type SessionState int

const (
	SessionWaitingForBite SessionState = iota
	SessionBiting
	SessionResolving
	SessionDone
)

func (s SessionState) String() string {
	switch s {
	case SessionWaitingForBite:
		return "waiting_for_bite"
	case SessionBiting:
		return "biting"
	case SessionResolving:
		return "resolving"
	case SessionDone:
		return "done"
	default:
		return "unknown"
	}
}

// CatchContext is everything the orchestrator needs to resolve one catch
type CatchContext struct {
	Player PlayerState
	Hook   Location
	World  WorldState
	Blocks BlockView
	Caught *Item
	Now    time.Time
}

// FishingAttemptResult is the outcome of one resolved catch
type FishingAttemptResult struct {
	AttemptID     string          `json:"attempt_id"`
	PlayerID      string          `json:"player_id"`
	World         string          `json:"world"`
	Category      string          `json:"category"`
	Probability   string          `json:"probability"`
	Item          *Item           `json:"item"`
	Timing        TimingResult    `json:"timing"`
	Luck          LuckResult      `json:"luck"`
	TotalLuck     float64         `json:"total_luck"`
	Weather       Weather         `json:"weather"`
	OpenWater     bool            `json:"open_water"`
	Forced        bool            `json:"forced,omitempty"`
	Bonus         bool            `json:"bonus,omitempty"`
	UniqueClaimed bool            `json:"unique_claimed,omitempty"`
	Rerolls       int             `json:"rerolls,omitempty"`
	Fallback      bool            `json:"fallback,omitempty"`
	Effects       CategoryEffects `json:"effects"`
	Warnings      []string        `json:"warnings,omitempty"`
}

// CatchOutcome wraps one or two attempt results. Double fishing yields two results
// that share the same luck and timing; SharedEffectsCategory picks the effects to play.
type CatchOutcome struct {
	Results               []FishingAttemptResult `json:"results"`
	Double                bool                   `json:"double"`
	SharedEffectsCategory string                 `json:"shared_effects_category"`
	Timing                TimingResult           `json:"timing"`
}

// Primary returns the first result
func (o CatchOutcome) Primary() FishingAttemptResult {
	return o.Results[0]
}

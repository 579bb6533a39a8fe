// Package category draws the reward category of a fishing attempt.
//
// Eligible categories are ordered by priority value, highest first, and a single
// uniform roll is walked through their cumulative adjusted chances. Numerically
// larger priorities therefore own the low end of the roll range.
package category

import (
	"math"
	"sort"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/debuglog"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/utils"
)

// Candidate is an eligible category with its adjusted chance
type Candidate struct {
	Name     string
	Priority int
	Quality  float64
	Base     float64
	Adjusted float64
}

// Selection is the outcome of one draw
type Selection struct {
	Category   string
	Priority   int
	BaseChance float64
	Adjusted   float64
	Roll       float64
	Total      float64
	Candidates []Candidate
	// Fallback is set when no candidate won and the default category was returned
	Fallback bool
}

// Selector performs weighted category draws
type Selector struct {
	rnd   func() float64
	trace debuglog.Sink
}

// NewSelector creates a selector. rnd must return values in [0, 1); nil uses the package RNG.
func NewSelector(rnd func() float64, trace debuglog.Sink) *Selector {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	if trace == nil {
		trace = debuglog.Discard
	}
	return &Selector{rnd: rnd, trace: trace}
}

// Candidates filters and adjusts the categories of cfg, sorted for the cumulative walk
func (s *Selector) Candidates(cfg *config.FishingConfig, playerID string, c Context) []Candidate {
	defs := cfg.CategoryDefinitions()
	candidates := make([]Candidate, 0, len(defs))

	for _, def := range defs {
		if ok, reason := CheckConditions(def, c); !ok {
			s.traceCategory(playerID, def.Name, LabelIneligible, def.Priority, def.Quality, def.Chance, 0, c.TotalLuck)
			s.trace.Logf(playerID, "     reason: %s", reason)
			continue
		}

		adjusted := AdjustChance(def.Chance, def.Quality, c.TotalLuck, cfg.LuckAdjustment)
		if adjusted <= 0 || math.IsNaN(adjusted) {
			s.traceCategory(playerID, def.Name, LabelIneligible, def.Priority, def.Quality, def.Chance, adjusted, c.TotalLuck)
			s.trace.Logf(playerID, "     reason: %s", ReasonNoChance)
			continue
		}

		s.traceCategory(playerID, def.Name, LabelEligible, def.Priority, def.Quality, def.Chance, adjusted, c.TotalLuck)
		candidates = append(candidates, Candidate{
			Name:     def.Name,
			Priority: def.Priority,
			Quality:  def.Quality,
			Base:     def.Chance,
			Adjusted: adjusted,
		})
	}

	// Descending priority value. Stable so equal priorities keep name order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority > candidates[j].Priority
	})
	return candidates
}

// Select draws one category. Exactly one random value is consumed whenever at least one
// candidate exists; otherwise the configured default category is returned.
func (s *Selector) Select(cfg *config.FishingConfig, playerID string, c Context) Selection {
	if math.IsNaN(c.TotalLuck) || math.IsInf(c.TotalLuck, 0) {
		s.trace.Logf(playerID, " total luck is not finite, using %s", cfg.DefaultCategory)
		return s.fallback(cfg, nil, 0, 0)
	}

	candidates := s.Candidates(cfg, playerID, c)
	if len(candidates) == 0 {
		return s.fallback(cfg, candidates, 0, 0)
	}

	var total float64
	for _, cand := range candidates {
		total += cand.Adjusted
	}

	roll := s.rnd() * total
	s.trace.Logf(playerID, " ROLL: %.2f / %.2f", roll, total)

	var cumulative float64
	winner := -1
	for i, cand := range candidates {
		lower := cumulative
		cumulative += cand.Adjusted
		switch {
		case winner < 0 && roll < cumulative:
			winner = i
			s.trace.Logf(playerID, "   %s %s (%.2f - %.2f)", LabelHit, cand.Name, lower, cumulative)
		case winner < 0:
			s.trace.Logf(playerID, "   %s %s (%.2f - %.2f)", LabelMiss, cand.Name, lower, cumulative)
		default:
			s.trace.Logf(playerID, "   %s %s (%.2f - %.2f)", LabelSkip, cand.Name, lower, cumulative)
		}
	}

	if winner < 0 {
		return s.fallback(cfg, candidates, roll, total)
	}

	w := candidates[winner]
	return Selection{
		Category:   w.Name,
		Priority:   w.Priority,
		BaseChance: w.Base,
		Adjusted:   w.Adjusted,
		Roll:       roll,
		Total:      total,
		Candidates: candidates,
	}
}

func (s *Selector) fallback(cfg *config.FishingConfig, candidates []Candidate, roll, total float64) Selection {
	sel := Selection{
		Category:   cfg.DefaultCategory,
		Priority:   domain.DefaultPriority,
		Roll:       roll,
		Total:      total,
		Candidates: candidates,
		Fallback:   true,
	}
	if def, ok := cfg.Category(cfg.DefaultCategory); ok {
		sel.Priority = def.Priority
		sel.BaseChance = def.Chance
		sel.Adjusted = def.Chance
	}
	return sel
}

func (s *Selector) traceCategory(playerID, name, label string, priority int, quality, base, adjusted, luck float64) {
	s.trace.Logf(playerID, "   [%s %s] Priority:%d Quality:%.1f Base:%s → Adjusted:%s (Luck:%.1f)",
		name, label, priority, quality, FormatForLog(base), FormatForLog(adjusted), luck)
}

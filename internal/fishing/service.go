// Package fishing orchestrates one fishing attempt: evaluate timing, aggregate luck,
// select a category, resolve a concrete item, run the unique-item protocol, attach
// ownership metadata and explain the probability to the player.
package fishing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/CustomizeFishing_Go/internal/category"
	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/debuglog"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/environment"
	"github.com/osse101/CustomizeFishing_Go/internal/event"
	"github.com/osse101/CustomizeFishing_Go/internal/logger"
	"github.com/osse101/CustomizeFishing_Go/internal/loot"
	"github.com/osse101/CustomizeFishing_Go/internal/luck"
	"github.com/osse101/CustomizeFishing_Go/internal/timing"
	"github.com/osse101/CustomizeFishing_Go/internal/unique"
)

// Service defines the fishing orchestrator driven by the host's fishing events
type Service interface {
	// Start opens a session when the player casts
	Start(ctx context.Context, player domain.PlayerState) error
	// Bite records the moment a fish bites
	Bite(ctx context.Context, playerID string) error
	// Catch resolves the reel-in into one result, or two when double fishing applies
	Catch(ctx context.Context, cc domain.CatchContext) (domain.CatchOutcome, error)
	// Cancel drops a session that ended without a catch
	Cancel(ctx context.Context, playerID string) error
	// SessionState reports a player's current session state
	SessionState(playerID string) (domain.SessionState, bool)

	// SetDebugCategory forces category for the player's debug rod. An empty category clears it.
	SetDebugCategory(ctx context.Context, playerID, categoryName string) error
	// ValidateDebugCategory checks categoryName against the active config and suggests near matches
	ValidateDebugCategory(categoryName string) ([]string, error)
	// NewDebugRod builds a debug rod item forcing categoryName
	NewDebugRod(categoryName string) (domain.EquippedItem, error)
}

// Tracer is the per-attempt diagnostic trace
type Tracer interface {
	debuglog.Sink
	Begin(playerID, playerName string)
	End(ctx context.Context, playerID string)
}

type service struct {
	store    *config.Store
	resolver loot.Resolver
	tracker  *unique.Tracker
	bus      event.Bus
	trace    Tracer
	selector *category.Selector
	sessions *SessionManager
	now      func() time.Time

	mu            sync.RWMutex
	debugCategory map[string]string
}

// NewService wires the orchestrator. rnd drives category selection; nil uses the package RNG.
func NewService(
	store *config.Store,
	resolver loot.Resolver,
	tracker *unique.Tracker,
	bus event.Bus,
	trace Tracer,
	rnd func() float64,
) Service {
	return newService(store, resolver, tracker, bus, trace, rnd)
}

func newService(store *config.Store, resolver loot.Resolver, tracker *unique.Tracker, bus event.Bus, trace Tracer, rnd func() float64) *service {
	if trace == nil {
		trace = noopTracer{}
	}
	return &service{
		store:         store,
		resolver:      resolver,
		tracker:       tracker,
		bus:           bus,
		trace:         trace,
		selector:      category.NewSelector(rnd, trace),
		sessions:      NewSessionManager(),
		now:           time.Now,
		debugCategory: make(map[string]string),
	}
}

// Start opens the player's session and their diagnostic trace
func (s *service) Start(ctx context.Context, player domain.PlayerState) error {
	if err := s.sessions.Start(player.ID, s.now()); err != nil {
		logger.FromContext(ctx).Debug(LogMsgSessionRejected, LogFieldPlayerID, player.ID, LogFieldError, err)
		return err
	}
	s.trace.Begin(player.ID, player.Name)
	return nil
}

// Bite records the bite time used for the timing evaluation
func (s *service) Bite(ctx context.Context, playerID string) error {
	now := s.now()
	if err := s.sessions.Bite(playerID, now); err != nil {
		logger.FromContext(ctx).Debug(LogMsgSessionRejected, LogFieldPlayerID, playerID, LogFieldError, err)
		return err
	}
	s.trace.Logf(playerID, "BITE at %s", now.Format(debuglog.LineTimeFormat))
	return nil
}

// Cancel closes the session and flushes whatever the trace holds
func (s *service) Cancel(ctx context.Context, playerID string) error {
	if err := s.sessions.Cancel(playerID); err != nil {
		return err
	}
	s.trace.End(ctx, playerID)
	return nil
}

func (s *service) SessionState(playerID string) (domain.SessionState, bool) {
	return s.sessions.State(playerID)
}

// attempt holds everything computed once per catch and shared by a double catch
type attempt struct {
	id        string
	cfg       *config.FishingConfig
	player    domain.PlayerState
	world     string
	weather   domain.Weather
	openWater bool
	timing    domain.TimingResult
	luck      domain.LuckResult
	totalLuck float64
	catCtx    category.Context
	forced    string
	warnings  []string
}

// Catch resolves the reel-in. It only fails when the session state rejects the catch;
// every downstream failure degrades into a result carrying warnings.
func (s *service) Catch(ctx context.Context, cc domain.CatchContext) (domain.CatchOutcome, error) {
	playerID := cc.Player.ID
	if playerID == "" {
		return domain.CatchOutcome{}, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}

	now := cc.Now
	if now.IsZero() {
		now = s.now()
	}
	biteAt, bitten, err := s.sessions.BeginResolve(playerID, now)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgSessionRejected, LogFieldPlayerID, playerID, LogFieldError, err)
		return domain.CatchOutcome{}, err
	}
	defer s.sessions.Finish(playerID)
	defer s.trace.End(ctx, playerID)

	a := &attempt{
		id:     logger.GenerateRequestID(),
		cfg:    s.store.Current(),
		player: cc.Player,
		world:  cc.Hook.World,
	}
	ctx = logger.WithAttempt(ctx, a.id, playerID)
	log := logger.FromContext(ctx)

	original := cc.Caught
	if original == nil {
		original = domain.NewItem(domain.MaterialCod, 1)
	}

	if !a.cfg.Enabled {
		log.Debug(LogMsgFishingDisabled)
		result := domain.FishingAttemptResult{
			AttemptID: a.id,
			PlayerID:  playerID,
			World:     a.world,
			Item:      original.Clone(),
			Timing:    domain.TimingMiss{},
		}
		return domain.CatchOutcome{Results: []domain.FishingAttemptResult{result}, Timing: result.Timing}, nil
	}

	a.weather = environment.ResolveWeather(cc.World, cc.Blocks, cc.Hook, a.cfg.WeatherOverride.Block, a.cfg.WeatherOverride.ScanHeight)
	a.openWater = environment.IsOpenWater(cc.Blocks, cc.Hook)
	a.timing = timing.NewEvaluator(a.cfg).FromBite(biteAt, now, bitten)
	if label := TimingLabel(a.timing); label != "" {
		s.trace.Logf(playerID, "TIMING %s", label)
	}
	a.luck = luck.NewAggregator(s.trace).Aggregate(a.cfg, a.player, a.weather, a.timing)
	a.totalLuck = luck.NewCalculator(a.cfg).Total(a.luck)
	a.catCtx = category.Context{
		OpenWater:     a.openWater,
		DolphinsGrace: a.player.HasEffect(domain.EffectDolphinsGrace),
		Weather:       a.weather,
		LuckOfTheSea:  a.luck.LuckOfTheSeaLevel,
		TotalLuck:     a.totalLuck,
	}
	s.trace.Logf(playerID, "CONDITIONS world=%s weather=%s open_water=%t dolphins_grace=%t eligible=%d",
		a.world, a.weather, a.openWater, a.catCtx.DolphinsGrace, category.EligibleCount(a.cfg, a.catCtx))
	a.forced = s.forcedCategory(ctx, a)

	first := s.resolve(ctx, a, original, false)
	outcome := domain.CatchOutcome{
		Results:               []domain.FishingAttemptResult{first},
		SharedEffectsCategory: first.Category,
		Timing:                a.timing,
	}

	if s.qualifiesForDouble(a) {
		log.Info(LogMsgDoubleFishing, LogFieldWorld, a.world)
		s.trace.Logf(playerID, "DOUBLE FISHING")
		second := s.resolve(ctx, a, domain.NewItem(domain.MaterialCod, 1), true)
		outcome.Results = append(outcome.Results, second)
		outcome.Double = true
		outcome.SharedEffectsCategory = category.HigherPriority(a.cfg, first.Category, second.Category)
	}

	return outcome, nil
}

// resolve runs category selection through ownership for one item
func (s *service) resolve(ctx context.Context, a *attempt, original *domain.Item, bonus bool) domain.FishingAttemptResult {
	log := logger.FromContext(ctx)
	result := domain.FishingAttemptResult{
		AttemptID: a.id,
		PlayerID:  a.player.ID,
		World:     a.world,
		Timing:    a.timing,
		Luck:      a.luck,
		TotalLuck: a.totalLuck,
		Weather:   a.weather,
		OpenWater: a.openWater,
		Bonus:     bonus,
		Warnings:  append([]string(nil), a.warnings...),
	}

	categoryName := a.forced
	if categoryName != "" {
		result.Forced = true
		s.trace.Logf(a.player.ID, "DEBUG ROD forced category %s", categoryName)
	} else {
		categoryName = s.selector.Select(a.cfg, a.player.ID, a.catCtx).Category
	}

	drawer := &attemptDrawer{
		cfg:      a.cfg,
		selector: s.selector,
		resolver: s.resolver,
		player:   a.player,
		catCtx:   a.catCtx,
		lootLuck: loot.ScaleLuck(a.totalLuck, a.cfg.Loot),
	}

	item, err := drawer.DrawFrom(ctx, categoryName)
	if err != nil {
		log.Error(LogMsgLootUnavailable, LogFieldCategory, categoryName, LogFieldError, err)
		s.trace.Logf(a.player.ID, "LOOT %s unavailable: %v", categoryName, err)
		result.Category = categoryName
		result.Item = original.Clone()
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", WarnLootUnavailable, err))
	} else {
		claimant := a.player.Claimant()
		out := unique.NewReroller(s.tracker, a.cfg, s.trace).Resolve(ctx, a.world, claimant, categoryName, item, drawer)
		result.Category = out.Category
		result.Item = ApplyBindingCurse(out.Item, claimant)
		result.UniqueClaimed = out.Claimed
		result.Rerolls = out.Rerolls
		result.Fallback = out.Fallback
		s.publishUnique(ctx, a, out)
	}

	if def, ok := a.cfg.Category(result.Category); ok {
		result.Effects = def.Effects
	}
	result.Probability = Explain(a.cfg, result.Category, a.luck, a.weather, a.timing)
	s.trace.Logf(a.player.ID, "RESULT category=%s item=%s %s", result.Category, result.Item.Label(), result.Probability)

	log.Info(LogMsgCatchResolved,
		LogFieldCategory, result.Category,
		LogFieldItem, result.Item.Label(),
		LogFieldTotalLuck, result.TotalLuck,
		LogFieldRerolls, result.Rerolls,
		LogFieldForced, result.Forced,
		LogFieldBonus, result.Bonus)
	s.publish(ctx, event.NewFishingCaughtEvent(a.player.Name, result))
	return result
}

func (s *service) qualifiesForDouble(a *attempt) bool {
	df := a.cfg.DoubleFishing
	return df.Enabled && a.luck.LuckOfTheSeaLevel >= df.MinLuckOfTheSea && a.luck.ConduitLevel >= df.MinConduitLevel
}

// forcedCategory returns the category a held debug rod forces, or "" when none applies
func (s *service) forcedCategory(ctx context.Context, a *attempt) string {
	rod, ok := a.player.Equipment[domain.SlotHand]
	if !ok || !rod.DebugRod {
		return ""
	}
	name := rod.DebugCategory
	if name == "" {
		s.mu.RLock()
		name = s.debugCategory[a.player.ID]
		s.mu.RUnlock()
	}
	if name == "" {
		return ""
	}
	if _, ok := a.cfg.Category(name); !ok {
		logger.FromContext(ctx).Warn(LogMsgUnknownDebugCat, LogFieldCategory, name)
		a.warnings = append(a.warnings, fmt.Sprintf("%s: %s", WarnUnknownDebugCategory, name))
		return ""
	}
	return name
}

func (s *service) publishUnique(ctx context.Context, a *attempt, out unique.Outcome) {
	for i, id := range out.Collisions {
		owner, _, err := s.tracker.Claimant(ctx, a.world, id)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgClaimantLookupFail, LogFieldUniqueID, id, LogFieldError, err)
		}
		s.publish(ctx, event.NewUniqueCollisionEvent(a.world, id, a.player.ID, owner.Name, i+1))
	}
	if out.Record != nil {
		s.publish(ctx, event.NewUniqueClaimedEvent(*out.Record, out.Item.Label(), out.Category))
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, LogFieldError, err)
	}
}

// SetDebugCategory remembers the category the player's debug rod forces
func (s *service) SetDebugCategory(ctx context.Context, playerID, categoryName string) error {
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if categoryName == "" {
		delete(s.debugCategory, playerID)
		return nil
	}
	if _, err := s.ValidateDebugCategory(categoryName); err != nil {
		return err
	}
	s.debugCategory[playerID] = categoryName
	logger.FromContext(ctx).Info(LogMsgDebugCategorySet, LogFieldPlayerID, playerID, LogFieldCategory, categoryName)
	return nil
}

// ValidateDebugCategory returns ErrCategoryNotFound plus the closest configured names
// when categoryName is not configured
func (s *service) ValidateDebugCategory(categoryName string) ([]string, error) {
	cfg := s.store.Current()
	if _, ok := cfg.Category(categoryName); ok {
		return nil, nil
	}
	suggestions := Suggest(categoryName, cfg.CategoryNames(), MaxCategorySuggestions)
	return suggestions, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, categoryName)
}

// NewDebugRod builds the rod item a player holds to force categoryName
func (s *service) NewDebugRod(categoryName string) (domain.EquippedItem, error) {
	if _, err := s.ValidateDebugCategory(categoryName); err != nil {
		return domain.EquippedItem{}, err
	}
	return domain.EquippedItem{
		Material:      domain.MaterialFishingRod,
		DisplayName:   DebugRodName(categoryName),
		DebugRod:      true,
		DebugCategory: categoryName,
	}, nil
}

// Suggest returns up to limit names ordered by edit distance to target. Names further
// than half the target's length are not considered similar.
func Suggest(target string, names []string, limit int) []string {
	type scored struct {
		name string
		dist int
	}
	maxDist := max(len(target)/2, 2)
	var matches []scored
	for _, name := range names {
		if d := levenshtein.ComputeDistance(target, name); d <= maxDist {
			matches = append(matches, scored{name: name, dist: d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].name < matches[j].name
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

// IsRejected reports whether err came from the session state machine
func IsRejected(err error) bool {
	return errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrSessionNotFound)
}

type noopTracer struct{}

func (noopTracer) Begin(string, string)        {}
func (noopTracer) Logf(string, string, ...any) {}
func (noopTracer) End(context.Context, string) {}

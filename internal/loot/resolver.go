// Package loot resolves a category into a concrete item using weighted JSON loot tables.
package loot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/logger"
	"github.com/osse101/CustomizeFishing_Go/internal/utils"
	"github.com/osse101/CustomizeFishing_Go/internal/validation"
)

// Resolver returns one item drawn from a category's pool.
// A missing table wraps domain.ErrLootTableNotFound; a pool with no positive weight wraps domain.ErrEmptyLoot.
type Resolver interface {
	Resolve(ctx context.Context, category string, luck float64) (*domain.Item, error)
}

type samplerKey struct {
	generation uint64
	table      string
	luck       float64
}

// TableResolver serves loot tables read from a directory
type TableResolver struct {
	dir       string
	validator validation.SchemaValidator
	rnd       func() float64

	mu         sync.RWMutex
	tables     map[string]Table
	generation uint64
	samplers   *lru.Cache[samplerKey, *AliasSampler[int]]
}

// NewTableResolver creates a resolver for dir. Call Reload before use.
func NewTableResolver(dir string, validator validation.SchemaValidator, rnd func() float64) (*TableResolver, error) {
	if validator == nil {
		validator = validation.NewSchemaValidator()
	}
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	cache, err := lru.New[samplerKey, *AliasSampler[int]](DefaultSamplerCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create sampler cache: %w", err)
	}
	return &TableResolver{
		dir:       dir,
		validator: validator,
		rnd:       rnd,
		tables:    make(map[string]Table),
		samplers:  cache,
	}, nil
}

// Reload re-reads every table in the directory. Tables failing schema validation are
// skipped with a warning; a missing directory is an error and keeps the previous tables.
func (r *TableResolver) Reload(ctx context.Context) error {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("failed to read loot table dir %s: %w", r.dir, err)
	}

	tables := make(map[string]Table, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), TableFileExtension) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), TableFileExtension)
		table, err := r.loadTable(filepath.Join(r.dir, e.Name()))
		if err != nil {
			log.Warn(LogMsgTableInvalid, LogFieldTable, name, "error", err)
			continue
		}
		table.Name = name
		tables[name] = table
	}

	r.mu.Lock()
	r.tables = tables
	r.generation++
	r.samplers.Purge()
	r.mu.Unlock()

	ids := r.UniqueIDs()
	log.Info(LogMsgTablesLoaded, LogFieldDir, r.dir, LogFieldTables, len(tables))
	log.Info(LogMsgUniqueScanned, LogFieldUniqueIDs, len(ids))
	return nil
}

func (r *TableResolver) loadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := r.validator.ValidateBytes(data, validation.LootTableSchema); err != nil {
		return Table{}, err
	}
	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return Table{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return table, nil
}

// Has reports whether a table exists for category
func (r *TableResolver) Has(category string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tables[category]
	return ok
}

// Tables returns the loaded table names, sorted
func (r *TableResolver) Tables() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UniqueIDs returns every unique id declared across all tables, sorted and deduplicated
func (r *TableResolver) UniqueIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, t := range r.tables {
		for _, e := range t.Entries {
			if e.UniqueID != "" {
				seen[e.UniqueID] = struct{}{}
			}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve draws one item from category's table at the given (already scaled) luck
func (r *TableResolver) Resolve(_ context.Context, category string, luck float64) (*domain.Item, error) {
	r.mu.RLock()
	table, ok := r.tables[category]
	generation := r.generation
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrLootTableNotFound, category)
	}

	sampler, err := r.sampler(generation, table, luck)
	if err != nil {
		return nil, err
	}

	return table.Entries[sampler.Sample(r.rnd)].ToItem(), nil
}

func (r *TableResolver) sampler(generation uint64, table Table, luck float64) (*AliasSampler[int], error) {
	key := samplerKey{generation: generation, table: table.Name, luck: luck}
	if s, ok := r.samplers.Get(key); ok {
		return s, nil
	}

	indexes := make([]int, len(table.Entries))
	weights := make([]float64, len(table.Entries))
	for i, e := range table.Entries {
		indexes[i] = i
		weights[i] = EffectiveWeight(e, luck)
	}

	s, err := NewAliasSampler(indexes, weights)
	if err != nil {
		if errors.Is(err, ErrNoItems) || errors.Is(err, ErrNonPositiveSum) {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrEmptyLoot, table.Name, err)
		}
		return nil, fmt.Errorf("failed to build sampler for %s: %w", table.Name, err)
	}
	r.samplers.Add(key, s)
	return s, nil
}

package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgInvalidConfig     = "invalid fishing configuration"
	ErrMsgCategoryNotFound  = "category not found"
	ErrMsgLootTableNotFound = "loot table not found"
	ErrMsgEmptyLoot         = "loot table produced no item"

	// Unique item errors
	ErrMsgUniqueAlreadyClaimed = "unique item already claimed"
	ErrMsgStoreUnavailable     = "unique item store unavailable"
	ErrMsgUnknownWorld         = "unknown world"

	// Session errors
	ErrMsgSessionNotFound   = "fishing session not found"
	ErrMsgInvalidTransition = "invalid fishing session transition"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidConfig     = errors.New(ErrMsgInvalidConfig)
	ErrCategoryNotFound  = errors.New(ErrMsgCategoryNotFound)
	ErrLootTableNotFound = errors.New(ErrMsgLootTableNotFound)
	ErrEmptyLoot         = errors.New(ErrMsgEmptyLoot)

	ErrUniqueAlreadyClaimed = errors.New(ErrMsgUniqueAlreadyClaimed)
	ErrStoreUnavailable     = errors.New(ErrMsgStoreUnavailable)
	ErrUnknownWorld         = errors.New(ErrMsgUnknownWorld)

	ErrSessionNotFound   = errors.New(ErrMsgSessionNotFound)
	ErrInvalidTransition = errors.New(ErrMsgInvalidTransition)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

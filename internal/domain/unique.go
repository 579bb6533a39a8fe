package domain

import "time"

// Claimant identifies the player who first caught a unique item
type Claimant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UniqueItemRecord is the durable claim of one unique id in one world.
// At most one record exists per (World, UniqueID) and it is never overwritten.
type UniqueItemRecord struct {
	World        string    `json:"world" db:"world"`
	UniqueID     string    `json:"unique_id" db:"unique_id"`
	CaughtBy     string    `json:"caught_by" db:"caught_by"`
	CaughtByName string    `json:"caught_by_name" db:"caught_by_name"`
	CaughtAt     time.Time `json:"caught_at" db:"caught_at"`
}

// Claimant returns the identity stored on the record
func (r UniqueItemRecord) Claimant() Claimant {
	return Claimant{ID: r.CaughtBy, Name: r.CaughtByName}
}

// WorldUniqueStats summarises the claims of one world
type WorldUniqueStats struct {
	World        string             `json:"world"`
	ClaimedCount int                `json:"claimed_count"`
	KnownCount   int                `json:"known_count"`
	Records      []UniqueItemRecord `json:"records"`
}

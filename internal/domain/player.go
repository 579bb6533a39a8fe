package domain

// EquipmentSlot identifies where an item is worn or held
type EquipmentSlot string

const (
	SlotHead    EquipmentSlot = "HEAD"
	SlotChest   EquipmentSlot = "CHEST"
	SlotLegs    EquipmentSlot = "LEGS"
	SlotFeet    EquipmentSlot = "FEET"
	SlotHand    EquipmentSlot = "HAND"
	SlotOffHand EquipmentSlot = "OFF_HAND"
)

// AllEquipmentSlots lists the six slots that contribute equipment luck
var AllEquipmentSlots = []EquipmentSlot{SlotHead, SlotChest, SlotLegs, SlotFeet, SlotHand, SlotOffHand}

// ModifierOperation is how an attribute modifier combines with the running value
type ModifierOperation string

const (
	OpAddNumber       ModifierOperation = "ADD_NUMBER"
	OpAddScalar       ModifierOperation = "ADD_SCALAR"
	OpMultiplyScalar1 ModifierOperation = "MULTIPLY_SCALAR_1"
)

// AttributeModifier is one luck modifier on an item. A nil Slot applies to every slot.
type AttributeModifier struct {
	Name      string            `json:"name"`
	Amount    float64           `json:"amount" validate:"min=-1024,max=1024"`
	Operation ModifierOperation `json:"operation" validate:"oneof=ADD_NUMBER ADD_SCALAR MULTIPLY_SCALAR_1"`
	Slot      *EquipmentSlot    `json:"slot,omitempty"`
}

// AppliesTo reports whether the modifier counts for an item worn in slot
func (m AttributeModifier) AppliesTo(slot EquipmentSlot) bool {
	return m.Slot == nil || *m.Slot == slot
}

// EquippedItem is the luck-relevant view of one equipped item
type EquippedItem struct {
	Material      string              `json:"material"`
	DisplayName   string              `json:"display_name,omitempty"`
	LuckOfTheSea  int                 `json:"luck_of_the_sea,omitempty" validate:"min=0"`
	LuckModifiers []AttributeModifier `json:"luck_modifiers,omitempty" validate:"dive"`
	DebugRod      bool                `json:"debug_rod,omitempty"`
	// DebugCategory is the category a debug rod forces. Empty falls back to the admin-set category.
	DebugCategory string              `json:"debug_category,omitempty"`
}

// StatusEffect is an active potion or beacon effect. Level is Amplifier + 1.
type StatusEffect struct {
	Type      string `json:"type" validate:"required"`
	Amplifier int    `json:"amplifier" validate:"min=0"`
}

// Level returns the effective effect level
func (e StatusEffect) Level() int {
	return e.Amplifier + 1
}

// PlayerState is the snapshot of the catching player taken at catch time
type PlayerState struct {
	ID              string                         `json:"id" validate:"required"`
	Name            string                         `json:"name" validate:"required"`
	Equipment       map[EquipmentSlot]EquippedItem `json:"equipment,omitempty" validate:"dive,keys,oneof=HEAD CHEST LEGS FEET HAND OFF_HAND,endkeys"`
	Effects         []StatusEffect                 `json:"effects,omitempty" validate:"dive"`
	ExperienceLevel int                            `json:"experience_level" validate:"min=0"`
}

// EffectLevel returns the level of the named effect, or 0 when inactive
func (p PlayerState) EffectLevel(effectType string) int {
	for _, e := range p.Effects {
		if e.Type == effectType {
			return e.Level()
		}
	}
	return 0
}

// HasEffect reports whether the named effect is active
func (p PlayerState) HasEffect(effectType string) bool {
	return p.EffectLevel(effectType) > 0
}

// Claimant returns the player's identity as a claimant
func (p PlayerState) Claimant() Claimant {
	return Claimant{ID: p.ID, Name: p.Name}
}

// Location is a block position in a named world
type Location struct {
	World string `json:"world" validate:"required"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
}

// Offset returns the location shifted by the given deltas
func (l Location) Offset(dx, dy, dz int) Location {
	return Location{World: l.World, X: l.X + dx, Y: l.Y + dy, Z: l.Z + dz}
}

// BlockView answers block queries around a location. Implemented by the host bridge.
type BlockView interface {
	BlockAt(loc Location) string
}

// WorldState is the weather view of a world at catch time
type WorldState struct {
	HasStorm   bool `json:"has_storm"`
	Thundering bool `json:"thundering"`
}

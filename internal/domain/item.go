package domain

// Item is a concrete reward payload. Material and Amount describe the stack,
// the remaining fields are the metadata the core reads or writes.
type Item struct {
	Material     string    `json:"material"`
	Amount       int       `json:"amount"`
	DisplayName  string    `json:"display_name,omitempty"`
	Lore         []string  `json:"lore,omitempty"`
	UniqueID     string    `json:"unique_id,omitempty"`
	BindingCurse bool      `json:"binding_curse,omitempty"`
	Owner        *Claimant `json:"owner,omitempty"`
	SkullOwner   *Claimant `json:"skull_owner,omitempty"`
}

// NewItem creates a plain stack of the given material
func NewItem(material string, amount int) *Item {
	return &Item{Material: material, Amount: amount}
}

// IsUnique reports whether the item carries a unique id tag
func (i *Item) IsUnique() bool {
	return i != nil && i.UniqueID != ""
}

// Clone returns a deep copy so processors never mutate a resolver's template
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	if i.Lore != nil {
		c.Lore = append([]string(nil), i.Lore...)
	}
	if i.Owner != nil {
		owner := *i.Owner
		c.Owner = &owner
	}
	if i.SkullOwner != nil {
		skull := *i.SkullOwner
		c.SkullOwner = &skull
	}
	return &c
}

// PrependLore inserts a line at the top of the lore
func (i *Item) PrependLore(line string) {
	i.Lore = append([]string{line}, i.Lore...)
}

// Label returns the display name or the material name
func (i *Item) Label() string {
	if i == nil {
		return "null"
	}
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return i.Material
}

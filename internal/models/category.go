package models

// CategoryMap maps each transaction type to its ordered list of category
// names. Order is insertion order; names are unique within a type.
type CategoryMap map[TransactionType][]string

// Clone returns a deep copy of the map.
func (m CategoryMap) Clone() CategoryMap {
	out := make(CategoryMap, len(m))
	for t, names := range m {
		cp := make([]string, len(names))
		copy(cp, names)
		out[t] = cp
	}
	return out
}

// CategoryRecord is the persisted form of one category registry entry.
// Position preserves insertion order within a type.
type CategoryRecord struct {
	Type     TransactionType `gorm:"primaryKey" json:"type"`
	Name     string          `gorm:"primaryKey" json:"name"`
	Position int             `gorm:"not null" json:"position"`
}

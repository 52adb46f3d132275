package corecorr

import (
	"github.com/google/uuid"
)

// ID is a provenance identifier attached to every tool result.
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered,
// sortable IDs, falling back to v4 if v7 generation fails.
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

func (id ID) String() string  { return string(id) }
func (id ID) IsEmpty() bool   { return id == "" }

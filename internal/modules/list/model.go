// README: Saved packing list aggregate and share-change events.
package list

import (
	"time"

	"wut2pack/internal/modules/packing"
	"wut2pack/internal/types"
)

// SavedList is a persisted, named packing list. Items hold the full generated
// structure and are stored opaquely as JSON; downstream edits replace the
// structure wholesale.
type SavedList struct {
	ID          types.ID
	Name        string
	Origin      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Items       packing.PackingList
	ShareID     types.ID
	IsShared    bool
	CreatedAt   time.Time
}

// ChangeEvent is fanned out to live share-link viewers whenever a list
// mutates.
type ChangeEvent struct {
	ShareID types.ID `json:"share_id"`
	Kind    string   `json:"kind"` // "renamed", "items", "shared", "deleted"
	Name    string   `json:"name,omitempty"`
}

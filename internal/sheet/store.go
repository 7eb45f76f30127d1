package sheet

import (
	"context"
)

// UpdateFunc mutates a loaded sheet in place. Returning an error aborts the
// update and nothing is persisted.
type UpdateFunc func(sh *Sheet) error

// Store provides persistent storage for the sheet
type Store interface {
	// Load returns the persisted sheet, or an empty one if nothing is stored yet
	Load(ctx context.Context) (*Sheet, error)

	// Save overwrites the persisted sheet
	Save(ctx context.Context, sh *Sheet) error

	// Update runs a load-mutate-save cycle as one unit
	Update(ctx context.Context, fn UpdateFunc) error
}

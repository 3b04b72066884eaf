package shift

import "context"

// Repository defines read/write access to the shift catalog. ListAuto order
// is semantically significant: it is the tie-break when windows overlap.
type Repository interface {
	// ListFixed returns all fixed shift definitions.
	ListFixed(ctx context.Context) ([]FixedShift, error)

	// ListAuto returns all auto-detected shift definitions in catalog order
	// (id ascending).
	ListAuto(ctx context.Context) ([]AutoShift, error)

	// CreateFixed inserts a fixed shift definition.
	CreateFixed(ctx context.Context, fs FixedShift) (FixedShift, error)

	// CreateAuto appends an auto shift definition to the catalog.
	CreateAuto(ctx context.Context, as AutoShift) (AutoShift, error)
}

package employee

import "context"

// Repository defines data access for the employee roster.
type Repository interface {
	// Create inserts an employee.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves one employee.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListAll returns the whole roster for the batch, shift reference
	// included.
	ListAll(ctx context.Context) ([]Employee, error)

	// List retrieves employees with search and pagination for the API.
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)

	// Update overwrites mutable fields.
	Update(ctx context.Context, emp Employee) error

	// Delete removes an employee.
	Delete(ctx context.Context, id string) error
}

// Filter narrows the employee listing.
type Filter struct {
	// Search matches id, name and job status, case-insensitive.
	Search string
	Page   int
	Limit  int
}

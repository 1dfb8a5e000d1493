package team

import "context"

// Repository describes team lookups needed by use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
}

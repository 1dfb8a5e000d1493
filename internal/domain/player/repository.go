package player

import "context"

// Repository describes roster reads needed by use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
}

package ports

import (
	"context"

	"github.com/APJB7/Fullstack-Backend/internal/domain"
)

// OrderStore persists booking records. Insert returns the
// store-assigned identity of the new record.
type OrderStore interface {
	Insert(ctx context.Context, o *domain.Order) (string, error)
}

package ports

import (
	"context"

	"github.com/APJB7/Fullstack-Backend/internal/domain"
)

type OrderNotifier interface {
	NotifyOrderPlaced(ctx context.Context, order *domain.Order, subjects []string)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/APJB7/Fullstack-Backend/internal/domain"
	"github.com/APJB7/Fullstack-Backend/internal/service/ports"
	"github.com/APJB7/Fullstack-Backend/internal/validation"
	"github.com/wb-go/wbf/logger"
)

type OrderService struct {
	orders   ports.OrderStore
	lessons  ports.LessonStore
	notifier ports.OrderNotifier
	logger   logger.Logger
}

func NewOrderService(
	orders ports.OrderStore,
	lessons ports.LessonStore,
	notifier ports.OrderNotifier,
	logger logger.Logger,
) *OrderService {
	return &OrderService{
		orders:   orders,
		lessons:  lessons,
		notifier: notifier,
		logger:   logger,
	}
}

// Create validates the payload, derives lessonIds and totalSpaces from
// the items, stamps createdAt and performs exactly one insert. Lesson
// capacity is not touched here; space changes only through the lesson
// update path.
func (s *OrderService) Create(ctx context.Context, in domain.CreateOrderInput) (*domain.Order, error) {
	if err := validation.OrderInput(in); err != nil {
		return nil, err
	}

	order := &domain.Order{
		Name:      in.Name,
		Phone:     in.Phone,
		Items:     in.Items,
		LessonIDs: make([]int, len(in.Items)),
		CreatedAt: time.Now().UTC(),
	}
	for i, item := range in.Items {
		order.LessonIDs[i] = item.LessonID
		order.TotalSpaces += item.Qty
	}

	id, err := s.orders.Insert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	order.ID = id

	s.logger.Info("order created",
		logger.String("order_id", order.ID),
		logger.Int("items", len(order.Items)),
		logger.Int("total_spaces", order.TotalSpaces),
	)

	go s.notify(context.WithoutCancel(ctx), order)

	return order, nil
}

func (s *OrderService) notify(ctx context.Context, order *domain.Order) {
	subjects := make([]string, 0, len(order.LessonIDs))
	for _, id := range order.LessonIDs {
		lesson, err := s.lessons.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("failed to get lesson for notification",
				logger.Int("lesson_id", id),
				logger.String("error", err.Error()),
			)
			continue
		}
		subjects = append(subjects, lesson.Subject)
	}

	s.notifier.NotifyOrderPlaced(ctx, order, subjects)
}

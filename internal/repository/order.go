package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/APJB7/Fullstack-Backend/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Insert writes the order with its derived columns and returns the
// generated identity. The items sequence is stored verbatim as jsonb.
func (r *OrderRepository) Insert(ctx context.Context, o *domain.Order) (string, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return "", fmt.Errorf("marshal order items: %w", err)
	}

	query := `INSERT INTO orders (name, phone, items, lesson_ids, total_spaces, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		o.Name, o.Phone, items, pq.Array(o.LessonIDs), o.TotalSpaces, o.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	var id string
	if err = row.Scan(&id); err != nil {
		return "", fmt.Errorf("scan order id: %w", err)
	}

	return id, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/APJB7/Fullstack-Backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type LessonRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLessonRepo(db *dbpg.DB) *LessonRepository {
	return &LessonRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LessonRepository) FindAll(ctx context.Context) ([]domain.Lesson, error) {
	query := `SELECT id, subject, topic, location, price, space, rating, description, icon, image
			  FROM lessons
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	defer rows.Close()

	var res []domain.Lesson
	for rows.Next() {
		var l domain.Lesson
		if err = rows.Scan(
			&l.ID, &l.Subject, &l.Topic, &l.Location, &l.Price,
			&l.Space, &l.Rating, &l.Description, &l.Icon, &l.Image,
		); err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

func (r *LessonRepository) FindByID(ctx context.Context, id int) (*domain.Lesson, error) {
	query := `SELECT id, subject, topic, location, price, space, rating, description, icon, image
			  FROM lessons
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}

	var l domain.Lesson
	if err = row.Scan(
		&l.ID, &l.Subject, &l.Topic, &l.Location, &l.Price,
		&l.Space, &l.Rating, &l.Description, &l.Icon, &l.Image,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLessonNotFound
		}
		return nil, fmt.Errorf("scan lesson: %w", err)
	}

	return &l, nil
}

// UpdateByID applies only the set fields of the patch. The id column is
// never part of the SET list. Returns the rows-affected count from the
// store: 0 when no lesson matched.
func (r *LessonRepository) UpdateByID(ctx context.Context, id int, patch domain.LessonPatch) (int64, error) {
	sets := make([]string, 0, 9)
	args := make([]any, 0, 10)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Subject != nil {
		set("subject", *patch.Subject)
	}
	if patch.Topic != nil {
		set("topic", *patch.Topic)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.Price != nil {
		set("price", *patch.Price)
	}
	if patch.Space != nil {
		set("space", *patch.Space)
	}
	if patch.Rating != nil {
		set("rating", *patch.Rating)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Icon != nil {
		set("icon", *patch.Icon)
	}
	if patch.Image != nil {
		set("image", *patch.Image)
	}

	if len(sets) == 0 {
		return 0, domain.ErrEmptyUpdate
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE lessons SET %s WHERE id = $%d`,
		strings.Join(sets, ", "), len(args),
	)

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update lesson: %w", err)
	}

	modified, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("lesson rows affected: %w", err)
	}

	return modified, nil
}

package ports

import (
	"context"

	"github.com/APJB7/Fullstack-Backend/internal/domain"
)

// LessonStore is the persistence capability the lesson logic consumes.
// UpdateByID returns the number of records the store reports as
// modified; zero means no record matched the id.
type LessonStore interface {
	FindAll(ctx context.Context) ([]domain.Lesson, error)
	FindByID(ctx context.Context, id int) (*domain.Lesson, error)
	UpdateByID(ctx context.Context, id int, patch domain.LessonPatch) (int64, error)
}

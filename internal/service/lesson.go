package service

import (
	"context"
	"fmt"

	"github.com/APJB7/Fullstack-Backend/internal/domain"
	"github.com/APJB7/Fullstack-Backend/internal/search"
	"github.com/APJB7/Fullstack-Backend/internal/service/ports"
	"github.com/APJB7/Fullstack-Backend/internal/validation"
)

type LessonService struct {
	repo ports.LessonStore
}

func NewLessonService(repo ports.LessonStore) *LessonService {
	return &LessonService{repo: repo}
}

func (s *LessonService) List(ctx context.Context) ([]domain.Lesson, error) {
	return s.repo.FindAll(ctx)
}

// Search compiles q and filters the catalog with it. The store is read
// exactly once regardless of the query; ordering is the store's natural
// order.
func (s *LessonService) Search(ctx context.Context, q string) ([]domain.Lesson, error) {
	pred, err := search.Compile(q)
	if err != nil {
		return nil, err
	}

	lessons, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	if pred.MatchAll() {
		return lessons, nil
	}

	matched := make([]domain.Lesson, 0, len(lessons))
	for _, l := range lessons {
		if pred.Matches(l) {
			matched = append(matched, l)
		}
	}

	return matched, nil
}

// Update applies a validated patch to the lesson with the given id and
// returns the store's modified count unchanged. A count of zero from
// the store means no record matched.
func (s *LessonService) Update(ctx context.Context, id int, patch domain.LessonPatch) (int64, error) {
	if err := validation.Patch(patch); err != nil {
		return 0, err
	}

	modified, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return 0, fmt.Errorf("update lesson: %w", err)
	}
	if modified == 0 {
		return 0, domain.ErrLessonNotFound
	}

	return modified, nil
}

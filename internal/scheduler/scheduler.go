package scheduler

import (
	"context"
	"time"

	"github.com/APJB7/Fullstack-Backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type catalogLister interface {
	List(ctx context.Context) ([]domain.Lesson, error)
}

// Scheduler periodically reports lessons that have sold out. Order
// creation never decrements capacity, so sold-out lessons are only
// visible to whoever administers space through the update path; this
// report keeps them honest.
type Scheduler struct {
	lessonService catalogLister
	interval      time.Duration
	logger        logger.Logger
}

func New(
	lessonService catalogLister,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		lessonService: lessonService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	lessons, err := s.lessonService.List(ctx)
	if err != nil {
		s.logger.Error("failed to list lessons",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, l := range lessons {
		if l.Space == 0 {
			s.logger.Info("lesson sold out",
				logger.Int("lesson_id", l.ID),
				logger.String("subject", l.Subject),
				logger.String("location", l.Location),
			)
		}
	}
}

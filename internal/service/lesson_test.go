package service

import (
	"context"
	"errors"
	"testing"

	"github.com/APJB7/Fullstack-Backend/internal/domain"
	"github.com/APJB7/Fullstack-Backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var catalog = []domain.Lesson{
	{ID: 1, Subject: "Math", Topic: "Math", Location: "UK", Price: 2500, Space: 5, Rating: 4},
	{ID: 2, Subject: "Physics", Topic: "Physics", Location: "UK", Price: 2200, Space: 5, Rating: 5},
	{ID: 3, Subject: "Programming", Topic: "Programming", Location: "USA", Price: 1800, Space: 0, Rating: 4},
}

func TestLessonService_List(t *testing.T) {
	repo := mocks.NewMockLessonStore(t)
	svc := NewLessonService(repo)

	repo.EXPECT().FindAll(mock.Anything).Return(catalog, nil)

	lessons, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, catalog, lessons)
}

func TestLessonService_Search_EmptyQueryReturnsAll(t *testing.T) {
	repo := mocks.NewMockLessonStore(t)
	svc := NewLessonService(repo)

	repo.EXPECT().FindAll(mock.Anything).Return(catalog, nil)

	lessons, err := svc.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Equal(t, catalog, lessons)
}

func TestLessonService_Search_SubjectCaseInsensitive(t *testing.T) {
	repo := mocks.NewMockLessonStore(t)
	svc := NewLessonService(repo)

	repo.EXPECT().FindAll(mock.Anything).Return(catalog, nil)

	lessons, err := svc.Search(context.Background(), "mATh")

	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, 1, lessons[0].ID)
}

func TestLessonService_Search_PriceAsString(t *testing.T) {
	repo := mocks.NewMockLessonStore(t)
	svc := NewLessonService(repo)

	repo.EXPECT().FindAll(mock.Anything).Return(catalog, nil)

	lessons, err := svc.Search(context.Background(), "2200")

	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, 2, lessons[0].ID)
}

func TestLessonService_Search_PreservesStoreOrder(t *testing.T) {
	repo := mocks.NewMockLessonStore(t)
	svc := NewLessonService(repo)

	repo.EXPECT().FindAll(mock.Anything).Return(catalog, nil)

	// "UK" location or space "5" both hit lessons 1 and 2; 0 hits lesson 3.
	lessons, err := svc.Search(context.Background(), "uk")

	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, 1, lessons[0].ID)
	assert.Equal(t, 2, lessons[1].ID)
}

func TestLessonService_Search_BadPattern(t *testing.T) {
	repo := mocks.NewMockLessonStore(t)
	svc := NewLessonService(repo)

	_, err := svc.Search(context.Background(), "*")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadPattern)
}

func TestLessonService_Search_StoreError(t *testing.T) {
	repo := mocks.NewMockLessonStore(t)
	svc := NewLessonService(repo)

	repo.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.Search(context.Background(), "math")

	require.Error(t, err)
}

func TestLessonService_Update_Success(t *testing.T) {
	repo := mocks.NewMockLessonStore(t)
	svc := NewLessonService(repo)

	space := 3
	patch := domain.LessonPatch{Space: &space}

	repo.EXPECT().UpdateByID(mock.Anything, 1, patch).Return(1, nil)

	modified, err := svc.Update(context.Background(), 1, patch)

	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)
}

func TestLessonService_Update_EmptyPatchSkipsStore(t *testing.T) {
	repo := mocks.NewMockLessonStore(t)
	svc := NewLessonService(repo)

	_, err := svc.Update(context.Background(), 1, domain.LessonPatch{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
	repo.AssertNotCalled(t, "UpdateByID")
}

func TestLessonService_Update_NegativeSpaceSkipsStore(t *testing.T) {
	repo := mocks.NewMockLessonStore(t)
	svc := NewLessonService(repo)

	space := -1
	_, err := svc.Update(context.Background(), 1, domain.LessonPatch{Space: &space})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidField)
	repo.AssertNotCalled(t, "UpdateByID")
}

func TestLessonService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockLessonStore(t)
	svc := NewLessonService(repo)

	subject := "Chemistry"
	patch := domain.LessonPatch{Subject: &subject}

	repo.EXPECT().UpdateByID(mock.Anything, 99, patch).Return(0, nil)

	_, err := svc.Update(context.Background(), 99, patch)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLessonNotFound)
}

func TestLessonService_Update_StoreError(t *testing.T) {
	repo := mocks.NewMockLessonStore(t)
	svc := NewLessonService(repo)

	subject := "Chemistry"
	patch := domain.LessonPatch{Subject: &subject}

	repo.EXPECT().UpdateByID(mock.Anything, 1, patch).Return(0, errors.New("db error"))

	_, err := svc.Update(context.Background(), 1, patch)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrLessonNotFound)
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/APJB7/Fullstack-Backend/internal/domain"
	"github.com/APJB7/Fullstack-Backend/internal/handler/dto"
	hmocks "github.com/APJB7/Fullstack-Backend/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockLessonSvc, *hmocks.MockOrderSvc, http.Handler) {
	t.Helper()
	lessonSvc := hmocks.NewMockLessonSvc(t)
	orderSvc := hmocks.NewMockOrderSvc(t)

	h := NewHandler(lessonSvc, orderSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/lessons", h.ListLessons)
		api.GET("/lessons/search", h.SearchLessons)
		api.PUT("/lessons/:id", h.UpdateLesson)
		api.POST("/orders", h.CreateOrder)
	}

	return lessonSvc, orderSvc, r
}

var testLessons = []domain.Lesson{
	{ID: 1, Subject: "Math", Topic: "Math", Location: "UK", Price: 2500, Space: 5, Rating: 4},
	{ID: 2, Subject: "Physics", Topic: "Physics", Location: "UK", Price: 2200, Space: 5, Rating: 5},
}

// --- Lessons ---

func TestHandler_ListLessons_Success(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessonSvc.EXPECT().List(mock.Anything).Return(testLessons, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lessons", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.LessonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Math", resp[0].Subject)
	assert.Equal(t, 2500.0, resp[0].Price)
}

func TestHandler_ListLessons_StoreError(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessonSvc.EXPECT().List(mock.Anything).Return(nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lessons", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}

func TestHandler_SearchLessons_Success(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessonSvc.EXPECT().Search(mock.Anything, "math").Return(testLessons[:1], nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lessons/search?q=math", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.LessonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 1, resp[0].ID)
}

func TestHandler_SearchLessons_EmptyQuery(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessonSvc.EXPECT().Search(mock.Anything, "").Return(testLessons, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lessons/search", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.LessonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_SearchLessons_BadPattern(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessonSvc.EXPECT().Search(mock.Anything, "*").Return(nil, domain.ErrBadPattern)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lessons/search?q=*", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateLesson_Success(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessonSvc.EXPECT().Update(mock.Anything, 3, mock.Anything).Return(1, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/lessons/3", bytes.NewReader([]byte(`{"space":3}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UpdateLessonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.UpdateID)
	assert.Equal(t, int64(1), resp.ModifiedCount)
}

func TestHandler_UpdateLesson_PatchFields(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessonSvc.EXPECT().Update(mock.Anything, 2, mock.Anything).Run(func(_ context.Context, _ int, patch domain.LessonPatch) {
		require.NotNil(t, patch.Space)
		assert.Equal(t, 4, *patch.Space)
		require.NotNil(t, patch.Subject)
		assert.Equal(t, "Chemistry", *patch.Subject)
		assert.Nil(t, patch.Price)
	}).Return(1, nil)

	w := httptest.NewRecorder()
	body := []byte(`{"subject":"Chemistry","space":4,"id":999}`)
	req := httptest.NewRequest(http.MethodPut, "/api/lessons/2", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateLesson_InvalidID(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/lessons/abc", bytes.NewReader([]byte(`{"space":3}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	lessonSvc.AssertNotCalled(t, "Update")
}

func TestHandler_UpdateLesson_EmptyPatch(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessonSvc.EXPECT().Update(mock.Anything, 1, domain.LessonPatch{}).Return(0, domain.ErrEmptyUpdate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/lessons/1", bytes.NewReader([]byte(`{"id":1}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateLesson_NotFound(t *testing.T) {
	lessonSvc, _, r := setupRouter(t)

	lessonSvc.EXPECT().Update(mock.Anything, 99, mock.Anything).Return(0, domain.ErrLessonNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/lessons/99", bytes.NewReader([]byte(`{"space":3}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Orders ---

func TestHandler_CreateOrder_Success(t *testing.T) {
	_, orderSvc, r := setupRouter(t)

	order := &domain.Order{
		ID:          "ord-1",
		Name:        "Anna",
		Phone:       "123",
		LessonIDs:   []int{1, 3},
		TotalSpaces: 3,
	}
	orderSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(order, nil)

	body, _ := json.Marshal(dto.CreateOrderRequest{
		Name:  "Anna",
		Phone: "123",
		Items: []dto.OrderItemRequest{
			{LessonID: 1, Qty: 2},
			{LessonID: 3, Qty: 1},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreateOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ord-1", resp.OrderID)
}

func TestHandler_CreateOrder_InvalidName(t *testing.T) {
	_, orderSvc, r := setupRouter(t)

	orderSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidFormat)

	body := []byte(`{"name":"Anna2","phone":"123","items":[{"lessonId":1,"qty":1}]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateOrder_MalformedJSON(t *testing.T) {
	_, orderSvc, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte(`{"name":`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	orderSvc.AssertNotCalled(t, "Create")
}

func TestHandler_CreateOrder_StoreError(t *testing.T) {
	_, orderSvc, r := setupRouter(t)

	orderSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	body := []byte(`{"name":"Anna","phone":"123","items":[{"lessonId":1,"qty":1}]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/APJB7/Fullstack-Backend/internal/domain"
	"github.com/APJB7/Fullstack-Backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type LessonSvc interface {
	List(ctx context.Context) ([]domain.Lesson, error)
	Search(ctx context.Context, q string) ([]domain.Lesson, error)
	Update(ctx context.Context, id int, patch domain.LessonPatch) (int64, error)
}

type OrderSvc interface {
	Create(ctx context.Context, in domain.CreateOrderInput) (*domain.Order, error)
}

type Handler struct {
	lessonService LessonSvc
	orderService  OrderSvc
}

func NewHandler(lessonService LessonSvc, orderService OrderSvc) *Handler {
	return &Handler{
		lessonService: lessonService,
		orderService:  orderService,
	}
}

// Lessons

func (h *Handler) ListLessons(c *ginext.Context) {
	lessons, err := h.lessonService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLessonResponses(lessons))
}

func (h *Handler) SearchLessons(c *ginext.Context) {
	lessons, err := h.lessonService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLessonResponses(lessons))
}

func (h *Handler) UpdateLesson(c *ginext.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid lesson id"})
		return
	}

	var req dto.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	modified, err := h.lessonService.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateLessonResponse{
		UpdateID:      id,
		ModifiedCount: modified,
	})
}

// Orders

func (h *Handler) CreateOrder(c *ginext.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{OrderID: order.ID})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrLessonNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrInvalidItem),
		errors.Is(err, domain.ErrEmptyUpdate),
		errors.Is(err, domain.ErrInvalidField),
		errors.Is(err, domain.ErrBadPattern):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

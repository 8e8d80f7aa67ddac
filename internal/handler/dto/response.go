package dto

import "github.com/APJB7/Fullstack-Backend/internal/domain"

type LessonResponse struct {
	ID          int     `json:"id"`
	Subject     string  `json:"subject"`
	Topic       string  `json:"topic"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	Space       int     `json:"space"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Image       string  `json:"image"`
}

type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

type UpdateLessonResponse struct {
	UpdateID      int   `json:"updateId"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToLessonResponse(l domain.Lesson) LessonResponse {
	return LessonResponse{
		ID:          l.ID,
		Subject:     l.Subject,
		Topic:       l.Topic,
		Location:    l.Location,
		Price:       l.Price,
		Space:       l.Space,
		Rating:      l.Rating,
		Description: l.Description,
		Icon:        l.Icon,
		Image:       l.Image,
	}
}

func ToLessonResponses(lessons []domain.Lesson) []LessonResponse {
	res := make([]LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		res = append(res, ToLessonResponse(l))
	}
	return res
}

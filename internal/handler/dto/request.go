package dto

import "github.com/APJB7/Fullstack-Backend/internal/domain"

// CreateOrderRequest carries the raw booking payload. No binding tags:
// shape and format rules belong to the validation layer so failures map
// to its error taxonomy instead of binder messages.
type CreateOrderRequest struct {
	Name  string             `json:"name"`
	Phone string             `json:"phone"`
	Items []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	LessonID int `json:"lessonId"`
	Qty      int `json:"qty"`
}

func (r CreateOrderRequest) ToInput() domain.CreateOrderInput {
	items := make([]domain.OrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.OrderItem{LessonID: it.LessonID, Qty: it.Qty}
	}
	return domain.CreateOrderInput{
		Name:  r.Name,
		Phone: r.Phone,
		Items: items,
	}
}

// UpdateLessonRequest is the typed partial record for lesson patches.
// Absent keys stay nil and are not applied. Identity fields are not
// representable here; a body carrying only "id"/"_id" decodes to an
// empty patch.
type UpdateLessonRequest struct {
	Subject     *string  `json:"subject"`
	Topic       *string  `json:"topic"`
	Location    *string  `json:"location"`
	Price       *float64 `json:"price"`
	Space       *int     `json:"space"`
	Rating      *float64 `json:"rating"`
	Description *string  `json:"description"`
	Icon        *string  `json:"icon"`
	Image       *string  `json:"image"`
}

func (r UpdateLessonRequest) ToPatch() domain.LessonPatch {
	return domain.LessonPatch{
		Subject:     r.Subject,
		Topic:       r.Topic,
		Location:    r.Location,
		Price:       r.Price,
		Space:       r.Space,
		Rating:      r.Rating,
		Description: r.Description,
		Icon:        r.Icon,
		Image:       r.Image,
	}
}

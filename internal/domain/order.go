package domain

import "time"

type OrderItem struct {
	LessonID int `json:"lessonId"`
	Qty      int `json:"qty"`
}

// Order is a booking request. It is written exactly once; there is no
// update or delete path. LessonIDs and TotalSpaces are derived from
// Items at creation time and stored alongside them.
type Order struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Items       []OrderItem `json:"items"`
	LessonIDs   []int       `json:"lessonIds"`
	TotalSpaces int         `json:"totalSpaces"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type CreateOrderInput struct {
	Name  string
	Phone string
	Items []OrderItem
}

package domain

// Lesson is a catalog entry. ID is assigned at seed time and never
// changes; it is the only identity the record has.
type Lesson struct {
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

// LessonPatch is a partial update: nil fields are left untouched.
// ID is deliberately absent, identity is not patchable.
type LessonPatch struct {
	Subject     *string
	Topic       *string
	Location    *string
	Price       *float64
	Space       *int
	Rating      *float64
	Description *string
	Icon        *string
	Image       *string
}

func (p LessonPatch) IsEmpty() bool {
	return p.Subject == nil &&
		p.Topic == nil &&
		p.Location == nil &&
		p.Price == nil &&
		p.Space == nil &&
		p.Rating == nil &&
		p.Description == nil &&
		p.Icon == nil &&
		p.Image == nil
}

package models

// Service is a priced offer of one of the club's sections.
type Service struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Duration    *string `json:"duration"`
	Section     Section `json:"section"`
}

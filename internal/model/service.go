package model

// Service is a bookable salon service (catalog entry snapshot).
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	Price           float64 `json:"price" validate:"gte=0"`
}

// ServiceSelection is the ordered set of services a customer picked for
// one booking. Totals are derived, never stored independently.
type ServiceSelection []Service

// TotalDuration sums the selection's durations in minutes. An empty
// selection has duration zero and can never yield a valid slot.
func (sel ServiceSelection) TotalDuration() int {
	total := 0
	for _, s := range sel {
		total += s.DurationMinutes
	}
	return total
}

// TotalPrice sums the selection's prices.
func (sel ServiceSelection) TotalPrice() float64 {
	total := 0.0
	for _, s := range sel {
		total += s.Price
	}
	return total
}

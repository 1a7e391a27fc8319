package entity

import "time"

// Event is anything a user can attend. Date is free-form text; the API makes
// no attempt at calendar validation.
type Event struct {
	ID        string
	Name      string
	Date      string
	Location  string
	CreatorID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import "time"

// Attendance records that a user intends to attend an event. A (user, event)
// pair occurs at most once; both sides must exist.
type Attendance struct {
	UserID    string
	EventID   string
	CreatedAt time.Time
}

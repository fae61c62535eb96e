package holiday

import "time"

// Holiday is a calendar date that counts as a paid rest day. Inactive
// holidays stay on record but are ignored by calendar math.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

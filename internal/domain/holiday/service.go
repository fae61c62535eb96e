package holiday

import "context"

// HolidayService defines business logic for the holiday table
type HolidayService interface {
	// CreateHoliday registers a holiday date
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	// ListHolidays retrieves every holiday, active or not
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)

	// UpdateHoliday renames a holiday or toggles its active flag
	UpdateHoliday(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)

	// DeleteHoliday removes a holiday
	DeleteHoliday(ctx context.Context, id string) error
}

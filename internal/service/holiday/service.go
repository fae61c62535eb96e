package holiday

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tendaops/backoffice-go/internal/domain/holiday"
	"github.com/tendaops/backoffice-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

// CreateHoliday implements holiday.HolidayService. The date column is
// unique, so registering the same date twice maps to ErrHolidayExists.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	id, err := uuid.NewV7()
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to generate holiday id: %w", err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	entity := holiday.Holiday{
		ID:     id.String(),
		Date:   date,
		Name:   req.Name,
		Active: active,
	}

	created, err := s.holidayRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.HolidayResponse{}, holiday.ErrHolidayExists
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return mapResponse(created), nil
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapResponse(h))
	}
	return responses, nil
}

// UpdateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) UpdateHoliday(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	h, err := s.holidayRepo.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Name != nil {
		if validator.IsEmpty(*req.Name) {
			return holiday.HolidayResponse{}, validator.ValidationErrors{{
				Field:   "name",
				Message: "name must not be empty",
			}}
		}
		h.Name = *req.Name
	}
	if req.Active != nil {
		h.Active = *req.Active
	}

	if err := s.holidayRepo.Update(ctx, h); err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return mapResponse(h), nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if _, err := s.holidayRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.holidayRepo.Delete(ctx, id)
}

func mapResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:     h.ID,
		Date:   h.Date.Format("2006-01-02"),
		Name:   h.Name,
		Active: h.Active,
	}
}

package timeclock

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tendaops/backoffice-go/internal/domain/employee"
	"github.com/tendaops/backoffice-go/internal/domain/timeclock"
	"github.com/tendaops/backoffice-go/internal/pkg/database"
	"github.com/tendaops/backoffice-go/internal/pkg/validator"
	"github.com/tendaops/backoffice-go/internal/repository/postgresql"
)

type TimeclockServiceImpl struct {
	db           *database.DB
	punchRepo    timeclock.PunchRepository
	employeeRepo employee.EmployeeRepository
}

func NewTimeclockService(db *database.DB, punchRepo timeclock.PunchRepository, employeeRepo employee.EmployeeRepository) timeclock.TimeclockService {
	return &TimeclockServiceImpl{
		db:           db,
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
	}
}

// RecordPunch implements timeclock.TimeclockService. Punches are accepted
// only for active employees; the pairing logic downstream tolerates any
// sequence, so no ordering check happens here.
func (s *TimeclockServiceImpl) RecordPunch(ctx context.Context, req timeclock.RecordPunchRequest) (timeclock.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.PunchResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	id, err := uuid.NewV7()
	if err != nil {
		return timeclock.PunchResponse{}, fmt.Errorf("failed to generate punch id: %w", err)
	}

	punch := timeclock.Punch{
		ID:         id.String(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Time:       req.Time,
		Kind:       timeclock.Kind(req.Kind),
	}

	// The roster check and the insert share a transaction so a concurrent
	// deactivation cannot slip a punch in for an inactive employee.
	var created timeclock.Punch
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		emp, err := s.employeeRepo.GetByID(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !emp.Active {
			return employee.ErrEmployeeInactive
		}

		created, err = s.punchRepo.Create(txCtx, punch)
		if err != nil {
			return fmt.Errorf("failed to record punch: %w", err)
		}
		return nil
	})
	if err != nil {
		return timeclock.PunchResponse{}, err
	}

	return mapResponse(created), nil
}

// ListEmployeeMonth implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) ListEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]timeclock.PunchResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	punches, err := s.punchRepo.ListByEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]timeclock.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, mapResponse(p))
	}
	return responses, nil
}

// DeletePunch implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) DeletePunch(ctx context.Context, id string) error {
	return s.punchRepo.Delete(ctx, id)
}

func mapResponse(p timeclock.Punch) timeclock.PunchResponse {
	return timeclock.PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Date:       p.DateKey(),
		Time:       p.Time,
		Kind:       string(p.Kind),
	}
}

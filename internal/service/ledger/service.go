package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tendaops/backoffice-go/internal/domain/employee"
	"github.com/tendaops/backoffice-go/internal/domain/ledger"
	"github.com/tendaops/backoffice-go/internal/pkg/validator"
)

type LedgerServiceImpl struct {
	entryRepo    ledger.EntryRepository
	employeeRepo employee.EmployeeRepository
}

func NewLedgerService(entryRepo ledger.EntryRepository, employeeRepo employee.EmployeeRepository) ledger.LedgerService {
	return &LedgerServiceImpl{
		entryRepo:    entryRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateEntry implements ledger.LedgerService. Occurrence entries carry no
// amount; whatever the caller sent is normalized to zero.
func (s *LedgerServiceImpl) CreateEntry(ctx context.Context, req ledger.CreateEntryRequest) (ledger.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.EntryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return ledger.EntryResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	id, err := uuid.NewV7()
	if err != nil {
		return ledger.EntryResponse{}, fmt.Errorf("failed to generate entry id: %w", err)
	}

	kind := ledger.Kind(req.Kind)
	amount := req.Amount
	if !kind.Monetary() {
		amount = decimal.Zero
	}

	entry := ledger.Entry{
		ID:          id.String(),
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Kind:        kind,
		Amount:      amount,
		Description: req.Description,
	}

	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		return ledger.EntryResponse{}, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	return mapResponse(created), nil
}

// ListEmployeeMonth implements ledger.LedgerService.
func (s *LedgerServiceImpl) ListEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]ledger.EntryResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListByEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	responses := make([]ledger.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, mapResponse(e))
	}
	return responses, nil
}

// DeleteEntry implements ledger.LedgerService.
func (s *LedgerServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	return s.entryRepo.Delete(ctx, id)
}

func mapResponse(e ledger.Entry) ledger.EntryResponse {
	return ledger.EntryResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Date:        e.DateKey(),
		Kind:        string(e.Kind),
		Amount:      e.Amount,
		Description: e.Description,
	}
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tendaops/backoffice-go/internal/domain/ledger"
	"github.com/tendaops/backoffice-go/internal/handler/http/response"
)

type LedgerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListEmployeeMonth(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &ledgerHandlerImpl{
		ledgerService: ledgerService,
	}
}

func (h *ledgerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req ledger.CreateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.CreateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Ledger entry created successfully", result)
}

func (h *ledgerHandlerImpl) ListEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	month, year, ok := periodQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	results, err := h.ledgerService.ListEmployeeMonth(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *ledgerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.ledgerService.DeleteEntry(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ledger entry deleted successfully", nil)
}

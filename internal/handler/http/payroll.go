package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tendaops/backoffice-go/internal/domain/payroll"
	"github.com/tendaops/backoffice-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
	GetStatement(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

func (h *payrollHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.RunPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetStatement(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	month, year, ok := periodQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	result, err := h.payrollService.GetStatement(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

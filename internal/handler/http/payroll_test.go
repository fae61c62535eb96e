package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendaops/backoffice-go/internal/domain/payroll"
)

type stubPayrollService struct {
	runResponse       payroll.RunPayrollResponse
	runErr            error
	statementResponse payroll.StatementResponse
	statementErr      error
}

func (s *stubPayrollService) RunPayroll(_ context.Context, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunPayrollResponse{}, err
	}
	return s.runResponse, s.runErr
}

func (s *stubPayrollService) GetStatement(_ context.Context, _ string, _, _ int) (payroll.StatementResponse, error) {
	return s.statementResponse, s.statementErr
}

func TestPayrollHandlerRun(t *testing.T) {
	svc := &stubPayrollService{
		runResponse: payroll.RunPayrollResponse{
			PeriodMonth:  3,
			PeriodYear:   2025,
			BusinessDays: 21,
			RestDays:     5,
		},
	}
	handler := NewPayrollHandler(svc)

	t.Run("valid request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/payroll/run",
			strings.NewReader(`{"period_month":3,"period_year":2025}`))
		rec := httptest.NewRecorder()

		handler.Run(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success bool                       `json:"success"`
			Data    payroll.RunPayrollResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, 3, body.Data.PeriodMonth)
		assert.Equal(t, 21, body.Data.BusinessDays)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/payroll/run", strings.NewReader(`{`))
		rec := httptest.NewRecorder()

		handler.Run(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("period out of range", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/payroll/run",
			strings.NewReader(`{"period_month":13,"period_year":2025}`))
		rec := httptest.NewRecorder()

		handler.Run(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestPayrollHandlerGetStatement(t *testing.T) {
	svc := &stubPayrollService{
		statementResponse: payroll.StatementResponse{
			EmployeeID:   "emp-1",
			EmployeeName: "Ana Souza",
			PeriodMonth:  3,
			PeriodYear:   2025,
		},
	}
	handler := NewPayrollHandler(svc)

	r := chi.NewRouter()
	r.Get("/employees/{id}/statement", handler.GetStatement)

	t.Run("valid request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/employees/emp-1/statement?month=3&year=2025", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success bool                      `json:"success"`
			Data    payroll.StatementResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, "emp-1", body.Data.EmployeeID)
	})

	t.Run("missing period query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/employees/emp-1/statement", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tendaops/backoffice-go/internal/domain/timeclock"
	"github.com/tendaops/backoffice-go/internal/handler/http/response"
)

type TimeclockHandler interface {
	RecordPunch(w http.ResponseWriter, r *http.Request)
	ListEmployeeMonth(w http.ResponseWriter, r *http.Request)
	DeletePunch(w http.ResponseWriter, r *http.Request)
}

type timeclockHandlerImpl struct {
	timeclockService timeclock.TimeclockService
}

func NewTimeclockHandler(timeclockService timeclock.TimeclockService) TimeclockHandler {
	return &timeclockHandlerImpl{
		timeclockService: timeclockService,
	}
}

func (h *timeclockHandlerImpl) RecordPunch(w http.ResponseWriter, r *http.Request) {
	var req timeclock.RecordPunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timeclockService.RecordPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded successfully", result)
}

func (h *timeclockHandlerImpl) ListEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	month, year, ok := periodQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	results, err := h.timeclockService.ListEmployeeMonth(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *timeclockHandlerImpl) DeletePunch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.timeclockService.DeletePunch(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch deleted successfully", nil)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tendaops/backoffice-go/internal/domain/holiday"
	"github.com/tendaops/backoffice-go/internal/handler/http/response"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{
		holidayService: holidayService,
	}
}

func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.holidayService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", result)
}

func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.holidayService.ListHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *holidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req holiday.UpdateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.holidayService.UpdateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday updated successfully", result)
}

func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.holidayService.DeleteHoliday(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

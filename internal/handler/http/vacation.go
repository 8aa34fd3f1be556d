package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/vacation"
	"github.com/holiday-manager/ponto-backend-go/internal/handler/http/response"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/validator"
)

type VacationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Estimate(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	vacationService vacation.VacationService
}

func NewVacationHandler(vacationService vacation.VacationService) VacationHandler {
	return &vacationHandlerImpl{vacationService: vacationService}
}

// List handles GET /vacations?employee_id=&from=&to=
func (h *vacationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := vacation.VacationFilter{}
	var errs validator.ValidationErrors

	if employeeID := query.Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if from := query.Get("from"); from != "" {
		if d, ok := validator.IsValidDate(from); ok {
			filter.From = &d
		} else {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be in YYYY-MM-DD format"})
		}
	}
	if to := query.Get("to"); to != "" {
		if d, ok := validator.IsValidDate(to); ok {
			filter.To = &d
		} else {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be in YYYY-MM-DD format"})
		}
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	results, err := h.vacationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Create handles POST /vacations
func (h *vacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req vacation.CreateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.vacationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation scheduled successfully", result)
}

// Delete handles DELETE /vacations/{id}
func (h *vacationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Vacation ID is required", nil)
		return
	}

	if err := h.vacationService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation deleted successfully", nil)
}

// Estimate handles POST /vacations/estimate
func (h *vacationHandlerImpl) Estimate(w http.ResponseWriter, r *http.Request) {
	var req vacation.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.vacationService.Estimate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/timeclock"
	"github.com/holiday-manager/ponto-backend-go/internal/handler/http/response"
)

type TimeClockHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	VerifyPrivileged(w http.ResponseWriter, r *http.Request)
}

type timeClockHandlerImpl struct {
	timeClockService timeclock.TimeClockService
}

func NewTimeClockHandler(timeClockService timeclock.TimeClockService) TimeClockHandler {
	return &timeClockHandlerImpl{timeClockService: timeClockService}
}

// Punch handles POST /time-clock/punch
func (h *timeClockHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req timeclock.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timeClockService.VerifyPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// VerifyPrivileged handles POST /time-clock/verify-privileged
func (h *timeClockHandlerImpl) VerifyPrivileged(w http.ResponseWriter, r *http.Request) {
	var req timeclock.VerifyPrivilegedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	authorized, err := h.timeClockService.VerifyPrivilegedPIN(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timeclock.VerifyPrivilegedResponse{Authorized: authorized})
}

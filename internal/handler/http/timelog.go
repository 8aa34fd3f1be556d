package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
	"github.com/holiday-manager/ponto-backend-go/internal/handler/http/response"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/sse"
)

type TimeLogHandler interface {
	// Raw punches and manual adjustments
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	// Timesheet
	GetTimesheet(w http.ResponseWriter, r *http.Request)
	ExportTimesheet(w http.ResponseWriter, r *http.Request)
	ShareTimesheet(w http.ResponseWriter, r *http.Request)

	// Live presence
	GetLivePresence(w http.ResponseWriter, r *http.Request)
	StreamLivePresence(w http.ResponseWriter, r *http.Request)
	ForceClockOut(w http.ResponseWriter, r *http.Request)
}

type timeLogHandlerImpl struct {
	timeLogService timelog.TimeLogService
	jwtService     jwt.Service
	hub            *sse.Hub
	keepalive      time.Duration
}

func NewTimeLogHandler(timeLogService timelog.TimeLogService, jwtService jwt.Service, hub *sse.Hub) TimeLogHandler {
	return &timeLogHandlerImpl{
		timeLogService: timeLogService,
		jwtService:     jwtService,
		hub:            hub,
		keepalive:      30 * time.Second,
	}
}

// timesheetFilter reads ?month=YYYY-MM&employee_id=
func timesheetFilter(r *http.Request) timelog.TimesheetFilter {
	filter := timelog.TimesheetFilter{Month: r.URL.Query().Get("month")}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	return filter
}

// List handles GET /time-logs
func (h *timeLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := timesheetFilter(r)
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.timeLogService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Create handles POST /time-logs
func (h *timeLogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timelog.CreateTimeLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create time log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeLogService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time log created successfully", result)
}

// Update handles PUT /time-logs/{id}
func (h *timeLogHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Time log ID is required", nil)
		return
	}

	var req timelog.UpdateTimeLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update time log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeLogService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time log updated successfully", result)
}

// Delete handles DELETE /time-logs/{id}
func (h *timeLogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Time log ID is required", nil)
		return
	}

	if err := h.timeLogService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time log deleted successfully", nil)
}

// GetTimesheet handles GET /time-logs/timesheet
func (h *timeLogHandlerImpl) GetTimesheet(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeLogService.GetTimesheet(r.Context(), timesheetFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportTimesheet handles GET /time-logs/timesheet/export
func (h *timeLogHandlerImpl) ExportTimesheet(w http.ResponseWriter, r *http.Request) {
	file, err := h.timeLogService.ExportTimesheet(r.Context(), timesheetFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Filename, file.ContentType, file.Content)
}

// ShareTimesheet handles GET /time-logs/timesheet/share
func (h *timeLogHandlerImpl) ShareTimesheet(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeLogService.ShareTimesheet(r.Context(), timesheetFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLivePresence handles GET /time-logs/live
func (h *timeLogHandlerImpl) GetLivePresence(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeLogService.GetLivePresence(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ForceClockOut handles POST /time-logs/live/{employeeID}/clock-out
func (h *timeLogHandlerImpl) ForceClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.timeLogService.ForceClockOut(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock-out recorded", result)
}

// StreamLivePresence handles GET /time-logs/live/stream?token=
// A fresh presence snapshot is pushed on connect and after every change to the establishment's punches.
func (h *timeLogHandlerImpl) StreamLivePresence(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter (EventSource can't send headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		response.Unauthorized(w, "Missing token")
		return
	}

	stream, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	// Subscribe before the first snapshot so no change slips between them
	events, cleanup := h.hub.Subscribe(stream.EstablishmentID)
	defer cleanup()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"establishment_id\":\"%s\"}\n\n", stream.EstablishmentID)
	h.writeSnapshot(w, r, stream.EstablishmentID)
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			slog.Debug("Presence refresh", "establishment_id", stream.EstablishmentID, "table", event.Table, "event", event.Event)
			h.writeSnapshot(w, r, stream.EstablishmentID)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

// writeSnapshot recomputes presence from storage; a failed refetch is reported in-band and the stream stays open
func (h *timeLogHandlerImpl) writeSnapshot(w http.ResponseWriter, r *http.Request, establishmentID string) {
	snapshot, err := h.timeLogService.SnapshotPresence(r.Context(), establishmentID)
	if err != nil {
		slog.Error("Presence snapshot failed", "establishment_id", establishmentID, "error", err)
		fmt.Fprint(w, "event: error\ndata: {\"message\":\"presence unavailable\"}\n\n")
		return
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		slog.Error("Presence snapshot encode failed", "error", err)
		return
	}
	fmt.Fprintf(w, "event: presence\ndata: %s\n\n", data)
}

package timelog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/establishment"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/sse"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/validator"
)

const timeLogTable = "time_logs"

// formerEmployeeName labels reports of an employee whose record was deleted but whose punches were kept
const formerEmployeeName = "Former employee"

// Options tunes the time log service
type Options struct {
	// LiveWindow bounds how far back presence looks for the latest punch
	LiveWindow time.Duration
	// DefaultLocation is used when an establishment has no valid timezone
	DefaultLocation *time.Location
	// Now is the clock, replaceable in tests
	Now func() time.Time
}

type TimeLogServiceImpl struct {
	timeLogRepo       timelog.TimeLogRepository
	employeeRepo      employee.EmployeeRepository
	establishmentRepo establishment.EstablishmentRepository
	hub               *sse.Hub
	opts              Options
}

func NewTimeLogService(
	timeLogRepo timelog.TimeLogRepository,
	employeeRepo employee.EmployeeRepository,
	establishmentRepo establishment.EstablishmentRepository,
	hub *sse.Hub,
	opts Options,
) timelog.TimeLogService {
	if opts.LiveWindow <= 0 {
		opts.LiveWindow = 24 * time.Hour
	}
	if opts.DefaultLocation == nil {
		opts.DefaultLocation = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &TimeLogServiceImpl{
		timeLogRepo:       timeLogRepo,
		employeeRepo:      employeeRepo,
		establishmentRepo: establishmentRepo,
		hub:               hub,
		opts:              opts,
	}
}

func (s *TimeLogServiceImpl) tenant(ctx context.Context, establishmentID string) (establishment.Establishment, *time.Location, error) {
	est, err := s.establishmentRepo.GetByID(ctx, establishmentID)
	if err != nil {
		return establishment.Establishment{}, nil, fmt.Errorf("failed to get establishment: %w", err)
	}
	return est, est.Location(s.opts.DefaultLocation), nil
}

func (s *TimeLogServiceImpl) publish(establishmentID string, event string, data interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(sse.Event{
		EstablishmentID: establishmentID,
		Table:           timeLogTable,
		Event:           event,
		Data:            data,
	})
}

func toResponse(log timelog.TimeLog, loc *time.Location) timelog.TimeLogResponse {
	local := log.Timestamp.In(loc)
	return timelog.TimeLogResponse{
		ID:           log.ID,
		EmployeeID:   log.EmployeeID,
		EmployeeName: log.EmployeeName,
		Type:         string(log.Type),
		Timestamp:    log.Timestamp.UTC().Format(time.RFC3339),
		Date:         local.Format(dateLayout),
		Time:         local.Format("15:04"),
	}
}

func toDurationResponse(d Duration) *timelog.DurationResponse {
	return &timelog.DurationResponse{
		Hours:        d.Hours,
		Minutes:      d.Minutes,
		TotalMinutes: d.TotalMinutes,
		Display:      d.String(),
	}
}

// List implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) List(ctx context.Context, filter timelog.TimesheetFilter) ([]timelog.TimeLogResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	_, loc, err := s.tenant(ctx, claims.EstablishmentID)
	if err != nil {
		return nil, err
	}

	from, to := filter.Range(loc)
	logs, err := s.timeLogRepo.List(ctx, claims.EstablishmentID, timelog.ListFilter{
		EmployeeID: filter.EmployeeID,
		From:       from,
		To:         to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}

	responses := make([]timelog.TimeLogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, toResponse(log, loc))
	}
	return responses, nil
}

// Create implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) Create(ctx context.Context, req timelog.CreateTimeLogRequest) (timelog.TimeLogResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.TimeLogResponse{}, err
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, claims.EstablishmentID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	_, loc, err := s.tenant(ctx, claims.EstablishmentID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	ts, err := timelog.LocalTimestamp(req.Date, req.Time, loc)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	created, err := s.timeLogRepo.Create(ctx, timelog.TimeLog{
		EmployeeID:      emp.ID,
		EstablishmentID: claims.EstablishmentID,
		Type:            timelog.EventType(req.Type),
		Timestamp:       ts,
		EmployeeName:    &emp.Name,
	})
	if err != nil {
		return timelog.TimeLogResponse{}, fmt.Errorf("failed to create time log: %w", err)
	}

	slog.Info("Manual time log created",
		"time_log_id", created.ID,
		"employee_id", emp.ID,
		"administrator_id", claims.UserID,
	)

	response := toResponse(created, loc)
	s.publish(claims.EstablishmentID, sse.EventInsert, response)
	return response, nil
}

// Update implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) Update(ctx context.Context, req timelog.UpdateTimeLogRequest) (timelog.TimeLogResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.TimeLogResponse{}, err
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	_, loc, err := s.tenant(ctx, claims.EstablishmentID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	var patch timelog.Patch
	if req.Type != nil {
		t := timelog.EventType(*req.Type)
		patch.Type = &t
	}
	if req.Date != nil && req.Time != nil {
		ts, err := timelog.LocalTimestamp(*req.Date, *req.Time, loc)
		if err != nil {
			return timelog.TimeLogResponse{}, err
		}
		patch.Timestamp = &ts
	}

	if err := s.timeLogRepo.Update(ctx, req.ID, claims.EstablishmentID, patch); err != nil {
		return timelog.TimeLogResponse{}, err
	}

	updated, err := s.timeLogRepo.GetByID(ctx, req.ID, claims.EstablishmentID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	slog.Info("Time log adjusted",
		"time_log_id", updated.ID,
		"employee_id", updated.EmployeeID,
		"administrator_id", claims.UserID,
	)

	response := toResponse(updated, loc)
	s.publish(claims.EstablishmentID, sse.EventUpdate, response)
	return response, nil
}

// Delete implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return validator.ValidationErrors{{Field: "id", Message: "id must be a valid UUID"}}
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.timeLogRepo.Delete(ctx, id, claims.EstablishmentID); err != nil {
		return err
	}

	slog.Info("Time log deleted", "time_log_id", id, "administrator_id", claims.UserID)

	s.publish(claims.EstablishmentID, sse.EventDelete, map[string]string{"id": id})
	return nil
}

// loadTimesheet fetches a month of punches and aggregates them
func (s *TimeLogServiceImpl) loadTimesheet(ctx context.Context, filter timelog.TimesheetFilter) (timesheetContext, error) {
	if err := filter.Validate(); err != nil {
		return timesheetContext{}, err
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return timesheetContext{}, err
	}
	est, loc, err := s.tenant(ctx, claims.EstablishmentID)
	if err != nil {
		return timesheetContext{}, err
	}

	tc := timesheetContext{establishment: est, loc: loc}
	if filter.SingleEmployee() {
		emp, err := s.employeeRepo.GetByID(ctx, *filter.EmployeeID, claims.EstablishmentID)
		switch {
		case err == nil:
			tc.subject = &timesheetSubject{ID: emp.ID, Name: emp.Name}
		case errors.Is(err, employee.ErrEmployeeNotFound):
			// punches may outlive the employee record
			tc.subject = &timesheetSubject{ID: *filter.EmployeeID, Name: formerEmployeeName, Deleted: true}
		default:
			return timesheetContext{}, err
		}
	}

	from, to := filter.Range(loc)
	tc.month = from
	logs, err := s.timeLogRepo.List(ctx, claims.EstablishmentID, timelog.ListFilter{
		EmployeeID: filter.EmployeeID,
		From:       from,
		To:         to,
		Ascending:  true,
	})
	if err != nil {
		return timesheetContext{}, fmt.Errorf("failed to list time logs: %w", err)
	}
	if tc.subject != nil && tc.subject.Deleted && len(logs) == 0 {
		return timesheetContext{}, employee.ErrEmployeeNotFound
	}

	tc.sheet = Summarize(logs, loc, filter.SingleEmployee())
	return tc, nil
}

// timesheetSubject is the single employee a timesheet is scoped to.
// Deleted is set when only retained punches remain for that ID.
type timesheetSubject struct {
	ID      string
	Name    string
	Deleted bool
}

type timesheetContext struct {
	establishment establishment.Establishment
	subject       *timesheetSubject
	loc           *time.Location
	month         time.Time
	sheet         Timesheet
}

// GetTimesheet implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) GetTimesheet(ctx context.Context, filter timelog.TimesheetFilter) (timelog.TimesheetResponse, error) {
	tc, err := s.loadTimesheet(ctx, filter)
	if err != nil {
		return timelog.TimesheetResponse{}, err
	}

	response := timelog.TimesheetResponse{
		Month:    tc.month.Format("2006-01"),
		Timezone: tc.loc.String(),
		Days:     make([]timelog.TimesheetDayResponse, 0, len(tc.sheet.Days)),
	}
	if tc.subject != nil {
		response.EmployeeID = &tc.subject.ID
		if !tc.subject.Deleted {
			response.EmployeeName = &tc.subject.Name
		}
		response.Total = toDurationResponse(tc.sheet.Total)
	}

	for _, day := range tc.sheet.Days {
		dayResponse := timelog.TimesheetDayResponse{
			Date: day.Key(),
			Logs: make([]timelog.TimeLogResponse, 0, len(day.Events)),
		}
		for _, event := range day.Events {
			dayResponse.Logs = append(dayResponse.Logs, toResponse(event, tc.loc))
		}
		if tc.sheet.PerDayTotals {
			dayResponse.Worked = toDurationResponse(day.Worked)
		}
		response.Days = append(response.Days, dayResponse)
	}

	return response, nil
}

// ExportTimesheet implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) ExportTimesheet(ctx context.Context, filter timelog.TimesheetFilter) (timelog.ExportFile, error) {
	if !filter.SingleEmployee() {
		return timelog.ExportFile{}, timelog.ErrSingleEmployeeScope
	}
	tc, err := s.loadTimesheet(ctx, filter)
	if err != nil {
		return timelog.ExportFile{}, err
	}

	calendar := FillMonth(tc.sheet, tc.month, tc.loc)
	content, err := RenderWorkbook(WorkbookHeader{
		EstablishmentName: tc.establishment.Name,
		EmployeeName:      tc.subject.Name,
		Month:             tc.month,
	}, calendar, tc.loc)
	if err != nil {
		return timelog.ExportFile{}, fmt.Errorf("failed to render timesheet workbook: %w", err)
	}

	return timelog.ExportFile{
		Filename:    workbookFilename(tc.subject.Name, tc.month),
		ContentType: workbookContentType,
		Content:     content,
	}, nil
}

// ShareTimesheet implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) ShareTimesheet(ctx context.Context, filter timelog.TimesheetFilter) (timelog.ShareResponse, error) {
	tc, err := s.loadTimesheet(ctx, filter)
	if err != nil {
		return timelog.ShareResponse{}, err
	}

	header := ShareHeader{Month: tc.month}
	if tc.subject != nil {
		header.EmployeeName = tc.subject.Name
	}
	text := ShareText(header, tc.sheet, tc.loc)

	return timelog.ShareResponse{
		Text: text,
		Link: ShareLink(text),
	}, nil
}

// GetLivePresence implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) GetLivePresence(ctx context.Context) (timelog.LivePresenceResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return timelog.LivePresenceResponse{}, err
	}
	return s.SnapshotPresence(ctx, claims.EstablishmentID)
}

// livePresence fetches the trailing window fresh and derives who is in
func (s *TimeLogServiceImpl) livePresence(ctx context.Context, establishmentID string, employeeID *string) ([]LiveSession, time.Time, time.Time, error) {
	now := s.opts.Now()
	windowStart := now.Add(-s.opts.LiveWindow)

	logs, err := s.timeLogRepo.List(ctx, establishmentID, timelog.ListFilter{
		EmployeeID: employeeID,
		From:       windowStart,
		To:         now,
	})
	if err != nil {
		return nil, now, windowStart, fmt.Errorf("failed to list recent time logs: %w", err)
	}
	return DerivePresence(logs), now, windowStart, nil
}

// SnapshotPresence implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) SnapshotPresence(ctx context.Context, establishmentID string) (timelog.LivePresenceResponse, error) {
	sessions, now, windowStart, err := s.livePresence(ctx, establishmentID, nil)
	if err != nil {
		return timelog.LivePresenceResponse{}, err
	}

	response := timelog.LivePresenceResponse{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		WindowStart: windowStart.UTC().Format(time.RFC3339),
		Count:       len(sessions),
		Sessions:    make([]timelog.LiveSessionResponse, 0, len(sessions)),
	}
	for _, session := range sessions {
		response.Sessions = append(response.Sessions, timelog.LiveSessionResponse{
			EmployeeID:     session.EmployeeID,
			EmployeeName:   session.EmployeeName,
			EventID:        session.EventID,
			EntryTimestamp: session.EntryTimestamp.UTC().Format(time.RFC3339),
			ElapsedMinutes: int(now.Sub(session.EntryTimestamp) / time.Minute),
		})
	}
	return response, nil
}

// ForceClockOut implements timelog.TimeLogService.
// The open IN is left untouched; a synthetic OUT stamped now closes the session.
func (s *TimeLogServiceImpl) ForceClockOut(ctx context.Context, employeeID string) (timelog.TimeLogResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return timelog.TimeLogResponse{}, validator.ValidationErrors{{Field: "employee_id", Message: "employee_id must be a valid UUID"}}
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, claims.EstablishmentID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	sessions, now, _, err := s.livePresence(ctx, claims.EstablishmentID, &emp.ID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	session, ok := FindSession(sessions, emp.ID)
	if !ok {
		return timelog.TimeLogResponse{}, timelog.ErrEmployeeNotPresent
	}

	created, err := s.timeLogRepo.Create(ctx, timelog.TimeLog{
		EmployeeID:      emp.ID,
		EstablishmentID: claims.EstablishmentID,
		Type:            timelog.EventOut,
		Timestamp:       now,
		EmployeeName:    &emp.Name,
	})
	if err != nil {
		return timelog.TimeLogResponse{}, fmt.Errorf("failed to record forced clock-out: %w", err)
	}

	slog.Info("Forced clock-out",
		"employee_id", emp.ID,
		"entry_event_id", session.EventID,
		"administrator_id", claims.UserID,
	)

	_, loc, err := s.tenant(ctx, claims.EstablishmentID)
	if err != nil {
		loc = s.opts.DefaultLocation
	}
	response := toResponse(created, loc)
	s.publish(claims.EstablishmentID, sse.EventInsert, response)
	return response, nil
}

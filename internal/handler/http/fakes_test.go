package http

import (
	"context"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/auth"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/dashboard"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/establishment"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timeclock"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/vacation"
)

// Fakes embed the service interface; calling a method that is not overridden panics.

type fakeAuthService struct {
	auth.AuthService
	lastRefresh auth.RefreshTokenRequest
	loginErr    error
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if f.loginErr != nil {
		return auth.TokenResponse{}, f.loginErr
	}
	return auth.TokenResponse{AccessToken: "access", AccessTokenExpiresIn: 1, RefreshToken: "refresh", RefreshTokenExpiresIn: 4102444800}, nil
}

func (f *fakeAuthService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	f.lastRefresh = req
	return auth.AccessTokenResponse{AccessToken: "new-access", AccessTokenExpiresIn: 1}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, req auth.RefreshTokenRequest) error {
	f.lastRefresh = req
	return nil
}

type fakeEstablishmentService struct {
	establishment.EstablishmentService
}

func (f *fakeEstablishmentService) GetMy(ctx context.Context) (establishment.EstablishmentResponse, error) {
	return establishment.EstablishmentResponse{ID: "est-1", Name: "Bar do Zé", Timezone: "America/Sao_Paulo"}, nil
}

func (f *fakeEstablishmentService) UpdateMy(ctx context.Context, req establishment.UpdateEstablishmentRequest) (establishment.EstablishmentResponse, error) {
	return establishment.EstablishmentResponse{ID: "est-1", Name: *req.Name, Timezone: "America/Sao_Paulo"}, nil
}

type fakeEmployeeService struct {
	employee.EmployeeService
	created int
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	f.created++
	return employee.EmployeeResponse{ID: "emp-1", Name: req.Name, Role: req.Role, Salary: req.Salary.StringFixed(2)}, nil
}

func (f *fakeEmployeeService) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	return []employee.EmployeeResponse{}, nil
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
}

type fakeVacationService struct {
	vacation.VacationService
	lastFilter vacation.VacationFilter
}

func (f *fakeVacationService) List(ctx context.Context, filter vacation.VacationFilter) ([]vacation.VacationResponse, error) {
	f.lastFilter = filter
	return []vacation.VacationResponse{}, nil
}

func (f *fakeVacationService) Create(ctx context.Context, req vacation.CreateVacationRequest) (vacation.VacationResponse, error) {
	return vacation.VacationResponse{}, vacation.ErrVacationOverlap
}

type fakeTimeLogService struct {
	timelog.TimeLogService
	snapshots int
}

func (f *fakeTimeLogService) ExportTimesheet(ctx context.Context, filter timelog.TimesheetFilter) (timelog.ExportFile, error) {
	if !filter.SingleEmployee() {
		return timelog.ExportFile{}, timelog.ErrSingleEmployeeScope
	}
	return timelog.ExportFile{
		Filename:    "ponto-2024-05.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     []byte("xlsx"),
	}, nil
}

func (f *fakeTimeLogService) SnapshotPresence(ctx context.Context, establishmentID string) (timelog.LivePresenceResponse, error) {
	f.snapshots++
	return timelog.LivePresenceResponse{
		Count:    1,
		Sessions: []timelog.LiveSessionResponse{{EmployeeID: "emp-1", EventID: "evt-1"}},
	}, nil
}

func (f *fakeTimeLogService) ForceClockOut(ctx context.Context, employeeID string) (timelog.TimeLogResponse, error) {
	return timelog.TimeLogResponse{}, timelog.ErrEmployeeNotPresent
}

type fakeTimeClockService struct {
	timeclock.TimeClockService
}

func (f *fakeTimeClockService) VerifyPunch(ctx context.Context, req timeclock.PunchRequest) (timeclock.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.PunchResponse{}, err
	}
	if req.PIN != "1234" {
		return timeclock.PunchResponse{}, timeclock.ErrNotAuthorized
	}
	return timeclock.PunchResponse{Accepted: true, Message: "Clock-in recorded", EventID: "evt-1"}, nil
}

func (f *fakeTimeClockService) VerifyPrivilegedPIN(ctx context.Context, req timeclock.VerifyPrivilegedRequest) (bool, error) {
	return req.PIN == "9999", nil
}

type fakeDashboardService struct {
	dashboard.DashboardService
}

func (f *fakeDashboardService) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	return &dashboard.DashboardResponse{Headcount: 3, ProjectedVacationCost: "0.00"}, nil
}

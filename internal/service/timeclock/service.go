package timeclock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timeclock"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/sse"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/validator"
	"github.com/holiday-manager/ponto-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// dummyPINHash is compared against when there is no real hash so a miss costs as much as a wrong PIN
var dummyPINHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("no-such-pin"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to generate dummy PIN hash: %v", err))
	}
	return hash
})

type TimeClockServiceImpl struct {
	txManager       postgresql.TxManager
	employeeRepo    employee.EmployeeRepository
	timeLogRepo     timelog.TimeLogRepository
	hub             *sse.Hub
	privilegedRoles []string
	now             func() time.Time
}

func NewTimeClockService(
	txManager postgresql.TxManager,
	employeeRepo employee.EmployeeRepository,
	timeLogRepo timelog.TimeLogRepository,
	hub *sse.Hub,
	privilegedRoles []string,
) timeclock.TimeClockService {
	return &TimeClockServiceImpl{
		txManager:       txManager,
		employeeRepo:    employeeRepo,
		timeLogRepo:     timeLogRepo,
		hub:             hub,
		privilegedRoles: privilegedRoles,
		now:             time.Now,
	}
}

// matchPIN compares pin with hash, or with the dummy hash when hash is nil
func matchPIN(hash *string, pin string) bool {
	if hash == nil || *hash == "" {
		_ = bcrypt.CompareHashAndPassword(dummyPINHash(), []byte(pin))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*hash), []byte(pin)) == nil
}

// VerifyPunch implements timeclock.TimeClockService.
func (s *TimeClockServiceImpl) VerifyPunch(ctx context.Context, req timeclock.PunchRequest) (timeclock.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.PunchResponse{}, err
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return timeclock.PunchResponse{}, err
	}

	var created timelog.TimeLog
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		var hash *string
		var err error
		if validator.IsValidUUID(req.EmployeeID) {
			hash, err = s.employeeRepo.GetPINHash(txCtx, req.EmployeeID, claims.EstablishmentID)
			if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
				return fmt.Errorf("failed to get employee PIN: %w", err)
			}
		}

		if !matchPIN(hash, req.PIN) {
			return timeclock.ErrNotAuthorized
		}

		created, err = s.timeLogRepo.Create(txCtx, timelog.TimeLog{
			EmployeeID:      req.EmployeeID,
			EstablishmentID: claims.EstablishmentID,
			Type:            timelog.EventType(req.Type),
			Timestamp:       s.now(),
		})
		if err != nil {
			return fmt.Errorf("failed to record punch: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, timeclock.ErrNotAuthorized) {
			slog.Warn("Time clock punch rejected",
				"employee_id", req.EmployeeID,
				"establishment_id", claims.EstablishmentID,
			)
		}
		return timeclock.PunchResponse{}, err
	}

	// Notify only once the row is committed
	if s.hub != nil {
		s.hub.Publish(sse.Event{
			EstablishmentID: claims.EstablishmentID,
			Table:           "time_logs",
			Event:           sse.EventInsert,
			Data: map[string]interface{}{
				"id":          created.ID,
				"employee_id": created.EmployeeID,
				"type":        created.Type,
				"timestamp":   created.Timestamp.UTC().Format(time.RFC3339),
			},
		})
	}

	message := "Clock-in recorded"
	if created.Type == timelog.EventOut {
		message = "Clock-out recorded"
	}
	return timeclock.PunchResponse{
		Accepted:  true,
		Message:   message,
		EventID:   created.ID,
		Timestamp: created.Timestamp.UTC().Format(time.RFC3339),
	}, nil
}

// VerifyPrivilegedPIN implements timeclock.TimeClockService.
func (s *TimeClockServiceImpl) VerifyPrivilegedPIN(ctx context.Context, req timeclock.VerifyPrivilegedRequest) (bool, error) {
	if err := req.Validate(); err != nil {
		return false, err
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return false, err
	}

	hashes, err := s.employeeRepo.ListPINHashesByRoles(ctx, claims.EstablishmentID, s.privilegedRoles)
	if err != nil {
		return false, fmt.Errorf("failed to load privileged PINs: %w", err)
	}
	if len(hashes) == 0 {
		matchPIN(nil, req.PIN)
		return false, nil
	}

	for _, hash := range hashes {
		if matchPIN(&hash, req.PIN) {
			return true, nil
		}
	}

	slog.Warn("Privileged PIN rejected", "establishment_id", claims.EstablishmentID)
	return false, nil
}

package timelog

import "errors"

var (
	ErrTimeLogNotFound     = errors.New("time log not found")
	ErrInvalidEventType    = errors.New("type must be IN or OUT")
	ErrEmployeeNotPresent  = errors.New("employee is not clocked in")
	ErrSingleEmployeeScope = errors.New("this report requires a single employee")
)

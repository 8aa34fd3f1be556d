package timelog

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
)

const dateLayout = "2006-01-02"

// Duration is worked time split into whole hours and the remaining minutes
type Duration struct {
	Hours        int
	Minutes      int
	TotalMinutes int
}

func DurationFromMinutes(total int) Duration {
	return Duration{
		Hours:        total / 60,
		Minutes:      total % 60,
		TotalMinutes: total,
	}
}

func (d Duration) IsZero() bool {
	return d.TotalMinutes == 0
}

// String renders "-" for no time, otherwise "8h 05m"
func (d Duration) String() string {
	if d.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%dh %02dm", d.Hours, d.Minutes)
}

// DayBucket holds one local calendar day of punches in ascending order
type DayBucket struct {
	Date   time.Time
	Events []timelog.TimeLog
	Worked Duration
}

// Key returns the bucket date as YYYY-MM-DD
func (b DayBucket) Key() string {
	return b.Date.Format(dateLayout)
}

type Timesheet struct {
	// Days is ordered newest first, or ascending after FillMonth
	Days  []DayBucket
	Total Duration

	// PerDayTotals is false when punches of several employees were mixed; Worked is zero then
	PerDayTotals bool
}

// compareEvents orders by timestamp, OUT before IN on equal timestamps, then by id.
// An OUT and IN stamped together close one shift and open the next.
func compareEvents(a, b timelog.TimeLog) int {
	if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
		return c
	}
	if a.Type != b.Type {
		if a.Type == timelog.EventOut {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.ID, b.ID)
}

func sortedAscending(events []timelog.TimeLog) []timelog.TimeLog {
	sorted := slices.Clone(events)
	slices.SortFunc(sorted, compareEvents)
	return sorted
}

// DayTotal sums closed IN/OUT pairs of one employee's day.
// A repeated IN replaces the open entry, an OUT with nothing open is ignored
// and an IN still open at the end of the list counts nothing.
func DayTotal(events []timelog.TimeLog) Duration {
	total := 0
	var entry *time.Time

	for _, event := range sortedAscending(events) {
		switch event.Type {
		case timelog.EventIn:
			ts := event.Timestamp
			entry = &ts
		case timelog.EventOut:
			if entry == nil {
				continue
			}
			total += int(event.Timestamp.Sub(*entry) / time.Minute)
			entry = nil
		}
	}

	return DurationFromMinutes(total)
}

// Summarize partitions events by local date in loc and totals each day.
// Day totals are only computed for a single employee since pairing punches
// across people is meaningless.
func Summarize(events []timelog.TimeLog, loc *time.Location, singleEmployee bool) Timesheet {
	if loc == nil {
		loc = time.UTC
	}

	grouped := make(map[string][]timelog.TimeLog)
	for _, event := range events {
		key := event.Timestamp.In(loc).Format(dateLayout)
		grouped[key] = append(grouped[key], event)
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	slices.Reverse(keys)

	sheet := Timesheet{
		Days:         make([]DayBucket, 0, len(keys)),
		PerDayTotals: singleEmployee,
	}
	totalMinutes := 0
	for _, key := range keys {
		date, _ := time.ParseInLocation(dateLayout, key, loc)
		bucket := DayBucket{
			Date:   date,
			Events: sortedAscending(grouped[key]),
		}
		if singleEmployee {
			bucket.Worked = DayTotal(bucket.Events)
			totalMinutes += bucket.Worked.TotalMinutes
		}
		sheet.Days = append(sheet.Days, bucket)
	}
	sheet.Total = DurationFromMinutes(totalMinutes)

	return sheet
}

// FillMonth returns the calendar view of month: every day in ascending order,
// days without punches carrying a zero duration.
func FillMonth(sheet Timesheet, month time.Time, loc *time.Location) Timesheet {
	if loc == nil {
		loc = time.UTC
	}

	byDate := make(map[string]DayBucket, len(sheet.Days))
	for _, day := range sheet.Days {
		byDate[day.Key()] = day
	}

	filled := Timesheet{PerDayTotals: sheet.PerDayTotals}
	totalMinutes := 0
	for d := 1; ; d++ {
		day := time.Date(month.Year(), month.Month(), d, 0, 0, 0, 0, loc)
		if day.Month() != month.Month() {
			break
		}
		bucket, ok := byDate[day.Format(dateLayout)]
		if !ok {
			bucket = DayBucket{Date: day}
		}
		totalMinutes += bucket.Worked.TotalMinutes
		filled.Days = append(filled.Days, bucket)
	}
	filled.Total = DurationFromMinutes(totalMinutes)

	return filled
}

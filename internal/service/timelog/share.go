package timelog

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/timelog"
)

const whatsAppShareURL = "https://wa.me/"

// componentUnescaper turns QueryEscape output into browser encodeURIComponent output:
// spaces as %20 and the sub-delims it leaves literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// ShareHeader identifies the month and scope of a shared timesheet
type ShareHeader struct {
	Month time.Time
	// EmployeeName is empty when the timesheet mixes all employees
	EmployeeName string
}

// ShareText renders a timesheet as a chat message with *bold* markup.
// Totals are only printed for a single employee.
func ShareText(header ShareHeader, sheet Timesheet, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	single := sheet.PerDayTotals

	var b strings.Builder
	fmt.Fprintf(&b, "📅 *Timesheet - %s*\n", header.Month.Format("January 2006"))
	if single {
		fmt.Fprintf(&b, "👤 *Employee:* %s\n", header.EmployeeName)
		fmt.Fprintf(&b, "⏱ *Monthly total:* %s\n", sheet.Total)
	} else {
		b.WriteString("👤 *Employee:* All\n")
	}
	b.WriteString("\n")

	for _, day := range sheet.Days {
		fmt.Fprintf(&b, "🔹 *%s*", day.Date.Format("02/01/2006"))
		if single {
			fmt.Fprintf(&b, " (%s)", day.Worked)
		}
		b.WriteString("\n")

		for _, event := range day.Events {
			emoji, label := "🟢", "In"
			if event.Type == timelog.EventOut {
				emoji, label = "🔴", "Out"
			}
			fmt.Fprintf(&b, "   %s %s - %s", emoji, event.Timestamp.In(loc).Format("15:04"), label)
			if !single {
				name := "Unknown"
				if event.EmployeeName != nil {
					name = *event.EmployeeName
				}
				fmt.Fprintf(&b, " (%s)", name)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("\nGenerated by Holiday Manager")
	return b.String()
}

// ShareLink wraps text in a wa.me link that opens a chat with the message prefilled
func ShareLink(text string) string {
	return whatsAppShareURL + "?text=" + componentUnescaper.Replace(url.QueryEscape(text))
}

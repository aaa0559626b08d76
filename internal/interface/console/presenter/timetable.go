package presenter

import (
	"fmt"
	"strings"

	"github.com/carmel-jorhat/student-portal/internal/application/query"
	"github.com/carmel-jorhat/student-portal/internal/domain/timetable"
	"github.com/carmel-jorhat/student-portal/pkg/timeutil"
)

// periodWidths sizes each period column to its widest scheduled label
// ("Economics/Computer" and friends).
var periodWidths = [timetable.LastPeriod]int{20, 15, 20, 14, 8, 20, 14, 20, 14}

const dayWidth = 10

// FormatTimetable renders today's schedule followed by the weekly table.
func FormatTimetable(result *query.TimetableResult) string {
	var sb strings.Builder

	sb.WriteString("\n\tTIME TABLE - CLASS 10A\n")
	sb.WriteString("\nCurrent Date: " + timeutil.FormatLong(result.AsOf) + "\n")

	sb.WriteString(fmt.Sprintf("\nToday's Schedule (%s):\n", result.Day.Day))
	if !result.DayAvailable {
		sb.WriteString("\nNo schedule available for today.\n")
	} else {
		sb.WriteString("---------------------------\n")
		sb.WriteString(fmt.Sprintf("%-6s | %-20s\n", "Period", "Subject"))
		sb.WriteString("---------------------------\n")
		for i, subject := range result.Day.Subjects {
			sb.WriteString(fmt.Sprintf("%-6d | %-20s\n", i+1, subject))
		}
	}

	if len(result.Week) > 0 {
		sb.WriteString("\nWeekly Schedule:\n")
		sb.WriteString(formatWeek(result.Week))
	}

	return sb.String()
}

func formatWeek(week []query.DayScheduleDTO) string {
	var sb strings.Builder

	totalWidth := dayWidth
	for _, w := range periodWidths {
		totalWidth += w + 3 // " | "
	}
	divider := strings.Repeat("-", totalWidth)

	sb.WriteString(divider + "\n")
	sb.WriteString(fmt.Sprintf("%-*s", dayWidth, "DAY"))
	for i, w := range periodWidths {
		sb.WriteString(fmt.Sprintf(" | %-*s", w, fmt.Sprintf("Period %d", i+1)))
	}
	sb.WriteString("\n" + divider + "\n")

	for _, day := range week {
		sb.WriteString(fmt.Sprintf("%-*s", dayWidth, day.Day))
		for i, subject := range day.Subjects {
			sb.WriteString(fmt.Sprintf(" | %-*s", periodWidths[i], subject))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(divider + "\n")

	return sb.String()
}

package presenter

import (
	"fmt"
	"strings"

	"github.com/carmel-jorhat/student-portal/internal/application/query"
	"github.com/carmel-jorhat/student-portal/pkg/timeutil"
)

// FormatUpcomingExams renders the announced exam schedule, or an
// informational message when nothing is scheduled.
func FormatUpcomingExams(result *query.UpcomingExamsResult) string {
	var sb strings.Builder

	sb.WriteString("\n\tUPCOMING TESTS\n")

	if len(result.Exams) == 0 {
		sb.WriteString("\nNo upcoming tests at the moment.\n")
		sb.WriteString("\nPlease check the Notice Board regularly for updates on examination schedules.\n")
		return sb.String()
	}

	for _, e := range result.Exams {
		sb.WriteString("\n" + noticeDivider + "\n")
		sb.WriteString("SUBJECT: " + e.Subject + "\n")
		sb.WriteString("DESCRIPTION: " + e.Description + "\n")
		sb.WriteString("DATE: " + timeutil.FormatLong(e.Date) + "\n")
		sb.WriteString(fmt.Sprintf("MAX MARKS: %d\n", e.MaxMarks))
		sb.WriteString("SYLLABUS: " + e.Syllabus + "\n")
		sb.WriteString(noticeDivider + "\n")
	}

	return sb.String()
}

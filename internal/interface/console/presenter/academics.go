package presenter

import (
	"fmt"
	"strings"

	"github.com/carmel-jorhat/student-portal/internal/application/query"
)

// FormatAcademicReport renders the academic performance view: the
// subject-wise table followed by the computed summary and grade.
func FormatAcademicReport(result *query.AcademicReportResult) string {
	var sb strings.Builder

	sb.WriteString("\n\tACADEMIC PERFORMANCE - " + result.StudentName + "\n")

	sb.WriteString("\nSubject-wise Performance:\n")
	sb.WriteString("---------------------------\n")
	for _, row := range result.Rows {
		sb.WriteString(fmt.Sprintf("%-20s: %d/%d\n", row.Subject, row.Mark, row.OutOf))
	}

	sb.WriteString("\nPerformance Summary:\n")
	sb.WriteString("---------------------------\n")
	sb.WriteString(fmt.Sprintf("Total Marks: %d/%d\n", result.TotalMarks, result.MaxTotal))
	sb.WriteString(fmt.Sprintf("Average Mark: %.2f/40\n", result.AverageMark))
	sb.WriteString(fmt.Sprintf("Percentage: %.2f%%\n", result.Percentage))
	sb.WriteString("Overall Grade: " + result.Grade + "\n")
	sb.WriteString("Comments: " + result.Comment + "\n")

	return sb.String()
}

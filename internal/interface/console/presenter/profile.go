// Package presenter formats query results into console views. Presenters are
// pure: domain and query data in, display strings out, no side effects.
package presenter

import (
	"fmt"
	"strings"

	"github.com/carmel-jorhat/student-portal/internal/application/query"
)

// FormatProfile renders the student identity card.
func FormatProfile(result *query.ProfileResult) string {
	var sb strings.Builder

	sb.WriteString("\nNAME: " + result.Name)
	sb.WriteString("\nSCHOOL: " + result.School)
	sb.WriteString("\nCLASS: " + result.Class)
	sb.WriteString("\nSECTION: " + result.Section)
	sb.WriteString(fmt.Sprintf("\nROLL NUMBER: %d", result.RollNumber))
	sb.WriteString("\nMOTHER'S NAME: " + result.MotherName)
	sb.WriteString("\nFATHER'S NAME: " + result.FatherName)
	sb.WriteString(fmt.Sprintf("\nADMISSION NUMBER: %d", result.AdmissionNumber))
	sb.WriteString("\n")

	return sb.String()
}

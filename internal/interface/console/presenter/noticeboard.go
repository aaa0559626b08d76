package presenter

import (
	"strings"

	"github.com/carmel-jorhat/student-portal/internal/application/query"
	"github.com/carmel-jorhat/student-portal/pkg/timeutil"
)

const noticeDivider = "-----------------------------------------"

// FormatNoticeBoard renders the active notices, or an informational message
// when nothing is currently active.
func FormatNoticeBoard(result *query.NoticeBoardResult) string {
	var sb strings.Builder

	sb.WriteString("\n\tNOTICE BOARD\n")
	sb.WriteString("\nActive Notices:\n")

	if len(result.Notices) == 0 {
		sb.WriteString("\nNo active notices at the moment.\n")
		return sb.String()
	}

	for _, n := range result.Notices {
		sb.WriteString("\n" + noticeDivider + "\n")
		sb.WriteString("TITLE: " + n.Title + "\n")
		sb.WriteString("POSTED: " + timeutil.FormatLong(n.PostedAt) + "\n")
		sb.WriteString("EXPIRES: " + timeutil.FormatLong(n.ExpiresAt) + "\n\n")
		sb.WriteString(n.Content)
		sb.WriteString("\n" + noticeDivider + "\n")
	}

	return sb.String()
}

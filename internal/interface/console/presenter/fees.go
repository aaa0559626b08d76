package presenter

import (
	"fmt"
	"strings"

	"github.com/carmel-jorhat/student-portal/internal/application/query"
	"github.com/carmel-jorhat/student-portal/pkg/timeutil"
)

// FormatFeeHistory renders the fee payment view.
func FormatFeeHistory(result *query.FeeHistoryResult) string {
	if !result.HasPayments {
		return "\nNo fee payment history found.\n"
	}

	var sb strings.Builder

	sb.WriteString("\n\tFEE PAYMENT HISTORY\n")
	last := result.LastPayment
	sb.WriteString(fmt.Sprintf("\nLast Payment: Payment of Rs. %.2f made on %s via %s (Receipt: %s)\n",
		last.Amount, timeutil.FormatLong(last.PaidAt), last.Method, last.ReceiptNumber))
	sb.WriteString(fmt.Sprintf("Days since last payment: %d\n", result.DaysSincePayment))

	sb.WriteString("\nNext Payment Due:\n")
	sb.WriteString(result.NextDueNote + "\n")
	sb.WriteString(fmt.Sprintf("Amount: Rs. %.2f\n", result.NextDueAmount))

	sb.WriteString("\nNOTE: " + result.LateFeeNote + "\n")
	sb.WriteString("Please pay online to prevent the spread of COVID-19 and follow the bank's safety protocols.\n")

	return sb.String()
}

package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(Date(2024, 5, 14), Date(2024, 5, 14)))
	assert.Equal(t, 10, DaysBetween(Date(2024, 5, 14), Date(2024, 5, 24)))
	assert.Equal(t, 1, DaysBetween(Date(2024, 12, 31), Date(2025, 1, 1)))
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 5, 14, 1, 0, 0, 0, IndiaTZ)
	night := time.Date(2024, 5, 15, 23, 30, 0, 0, IndiaTZ)
	assert.Equal(t, 1, DaysBetween(morning, night))
}

func TestStartOfDay(t *testing.T) {
	noon := time.Date(2025, 3, 5, 12, 30, 45, 1, IndiaTZ)
	assert.Equal(t, Date(2025, 3, 5), StartOfDay(noon))
	assert.Equal(t, Date(2025, 3, 5), StartOfDay(Date(2025, 3, 5)))
}

func TestFormatLong(t *testing.T) {
	assert.Equal(t, "May 14, 2024", FormatLong(Date(2024, 5, 14)))
	assert.Equal(t, "February 28, 2025", FormatLong(Date(2025, 2, 28)))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Monday", DayName(Date(2025, 3, 10)))
	assert.Equal(t, "Sunday", DayName(Date(2025, 3, 9)))
}

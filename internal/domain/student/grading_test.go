package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeFor_BoundaryValues(t *testing.T) {
	tests := []struct {
		percentage float64
		want       Grade
	}{
		{100, GradeAPlus},
		{90, GradeAPlus},
		{89.99, GradeA},
		{80, GradeA},
		{79.99, GradeBPlus},
		{70, GradeBPlus},
		{69.99, GradeB},
		{60, GradeB},
		{59.99, GradeC},
		{50, GradeC},
		{49.99, GradeD},
		{40, GradeD},
		{39.99, GradeF},
		{0, GradeF},
	}

	for _, tt := range tests {
		grade, comment := GradeFor(tt.percentage)
		assert.Equalf(t, tt.want, grade, "percentage %.2f", tt.percentage)
		assert.NotEmpty(t, comment)
	}
}

func TestGradeFor_TotalOverEntireRange(t *testing.T) {
	// Sweep in small steps: every input maps to some grade, no gaps.
	for p := 0.0; p <= 100.0; p += 0.25 {
		grade, comment := GradeFor(p)
		assert.NotEmpty(t, grade)
		assert.NotEmpty(t, comment)
	}

	// Out-of-range inputs still resolve rather than panic.
	grade, _ := GradeFor(-5)
	assert.Equal(t, GradeF, grade)
	grade, _ = GradeFor(105)
	assert.Equal(t, GradeAPlus, grade)
}

func TestGradeFor_Comments(t *testing.T) {
	_, comment := GradeFor(95)
	assert.Equal(t, "Excellent performance! Keep up the outstanding work.", comment)

	_, comment = GradeFor(35)
	assert.Equal(t, "Unsatisfactory performance. Immediate attention required.", comment)
}

func TestOverallGrade_MarksSummingTo220Over8Subjects(t *testing.T) {
	// 220/320 = 68.75% - grade B.
	st, err := NewStudent(NewStudentParams{
		RollNumber: 1, Name: "Arjun Mehta", AdmissionNumber: 12304,
		Marks: Marks{
			"English Literature": 35,
			"English Language":   24,
			"Mathematics":        23,
			"Biology":            34,
			"Chemistry":          40,
			"Physics":            21,
			"Geography":          22,
			"History and Civics": 21,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 220, st.TotalMarks())
	assert.InDelta(t, 68.75, st.Percentage(), 1e-9)

	grade, _ := st.OverallGrade()
	assert.Equal(t, GradeB, grade)
}

package student

// PerSubjectMax is the uniform maximum mark per subject used when recording
// marks and computing the overall percentage. Upcoming exams may carry their
// own maxima; those never feed the marks map.
const PerSubjectMax = 40

// Grade is a letter grade derived from the overall percentage.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// gradeBand couples an inclusive lower percentage bound with its grade and
// the report-card remark for that band.
type gradeBand struct {
	floor   float64
	grade   Grade
	comment string
}

// gradeBands is evaluated top-down; the first band whose floor is reached
// wins. Keeping the thresholds in one sorted table avoids gap and overlap
// mistakes between adjacent ranges.
var gradeBands = []gradeBand{
	{90, GradeAPlus, "Excellent performance! Keep up the outstanding work."},
	{80, GradeA, "Very good performance. Continue your dedication."},
	{70, GradeBPlus, "Good performance with room for improvement."},
	{60, GradeB, "Satisfactory performance. Work on weaker subjects."},
	{50, GradeC, "Average performance. Needs improvement in several areas."},
	{40, GradeD, "Below average performance. Requires significant improvement."},
	{0, GradeF, "Unsatisfactory performance. Immediate attention required."},
}

// GradeFor maps a percentage to a letter grade and the accompanying remark.
// Total over [0, 100]: every band floor is an inclusive lower bound, and
// anything below 40 (including negative input) falls through to F.
func GradeFor(percentage float64) (Grade, string) {
	for _, band := range gradeBands {
		if percentage >= band.floor {
			return band.grade, band.comment
		}
	}
	return GradeF, gradeBands[len(gradeBands)-1].comment
}

// OverallGrade returns the student's grade and remark for their current
// percentage.
func (s *Student) OverallGrade() (Grade, string) {
	return GradeFor(s.Percentage())
}

// Package compute holds the derived-computation engines: grading, payroll,
// fee ledger and attendance aggregation. Every function here is pure and
// reentrant; it reads settled values and never touches the store.
package compute

import "math"

// Grade is a letter grade with its grade point.
type Grade struct {
	Letter string  `json:"grade"`
	Points float64 `json:"gradePoint"`
}

// gradeScale maps inclusive lower percentage bounds to grades, evaluated
// top-down with first match winning.
var gradeScale = []struct {
	min   float64
	grade Grade
}{
	{90, Grade{"O", 10}},
	{80, Grade{"A+", 9}},
	{70, Grade{"A", 8}},
	{60, Grade{"B+", 7}},
	{50, Grade{"B", 6}},
	{40, Grade{"C", 5}},
	{33, Grade{"D", 4}},
}

var gradeFail = Grade{"F", 0}

// GradeFor maps obtained marks against a maximum to a letter grade. A
// non-positive maximum yields a fail grade rather than dividing by zero.
func GradeFor(marksObtained, maxMarks float64) Grade {
	if maxMarks <= 0 {
		return gradeFail
	}
	percentage := marksObtained / maxMarks * 100
	for _, band := range gradeScale {
		if percentage >= band.min {
			return band.grade
		}
	}
	return gradeFail
}

// GradeCredit is one graded subject weighted by its credits.
type GradeCredit struct {
	GradePoint float64
	Credits    int
}

// CGPA is the credit-weighted average of grade points, rounded to two decimal
// places. An empty input or zero total credits yields 0.
func CGPA(entries []GradeCredit) float64 {
	var points, credits float64
	for _, e := range entries {
		points += e.GradePoint * float64(e.Credits)
		credits += float64(e.Credits)
	}
	if credits == 0 {
		return 0
	}
	return round2(points / credits)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		name     string
		marks    float64
		maxMarks float64
		letter   string
		points   float64
	}{
		{"outstanding at boundary", 90, 100, "O", 10},
		{"full marks", 100, 100, "O", 10},
		{"a plus at boundary", 80, 100, "A+", 9},
		{"just below a plus", 79.9, 100, "A", 8},
		{"b plus at boundary", 60, 100, "B+", 7},
		{"b at boundary", 50, 100, "B", 6},
		{"c at boundary", 40, 100, "C", 5},
		{"pass at boundary", 33, 100, "D", 4},
		{"fail just below pass", 32.9, 100, "F", 0},
		{"zero marks", 0, 100, "F", 0},
		{"scaled maximum", 45, 50, "O", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grade := GradeFor(tt.marks, tt.maxMarks)
			assert.Equal(t, tt.letter, grade.Letter)
			assert.Equal(t, tt.points, grade.Points)
		})
	}
}

func TestGradeForZeroMaxMarks(t *testing.T) {
	grade := GradeFor(50, 0)
	assert.Equal(t, "F", grade.Letter)
	assert.Equal(t, float64(0), grade.Points)
}

func TestCGPA(t *testing.T) {
	entries := []GradeCredit{
		{GradePoint: 10, Credits: 4},
		{GradePoint: 8, Credits: 3},
		{GradePoint: 6, Credits: 2},
	}
	// (40 + 24 + 12) / 9 = 8.444...
	assert.Equal(t, 8.44, CGPA(entries))
}

func TestCGPARoundsHalfUp(t *testing.T) {
	entries := []GradeCredit{
		{GradePoint: 7, Credits: 2},
		{GradePoint: 8, Credits: 1},
	}
	// 22 / 3 = 7.333...
	assert.Equal(t, 7.33, CGPA(entries))
}

func TestCGPAEmpty(t *testing.T) {
	assert.Equal(t, float64(0), CGPA(nil))
	assert.Equal(t, float64(0), CGPA([]GradeCredit{{GradePoint: 8, Credits: 0}}))
}

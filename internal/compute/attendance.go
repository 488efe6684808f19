package compute

import (
	"math"

	"github.com/emirhank/campuscore/internal/app/models"
)

// AttendanceStats aggregates attendance records for one student or cohort.
// Holiday records are informational and excluded from Total, so a holiday
// never reads as a missed class.
type AttendanceStats struct {
	Present    int `json:"present"`
	Absent     int `json:"absent"`
	Leave      int `json:"leave"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Attendance counts record statuses and derives the attendance percentage.
// Zero countable records yields a 0 percentage.
func Attendance(records []models.AttendanceRecord) AttendanceStats {
	var s AttendanceStats
	for _, r := range records {
		switch r.Status {
		case models.AttendancePresent:
			s.Present++
		case models.AttendanceAbsent:
			s.Absent++
		case models.AttendanceLeave:
			s.Leave++
		default:
			// holidays and unknown statuses are not attendance opportunities
			continue
		}
		s.Total++
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Present) / float64(s.Total) * 100))
	}
	return s
}

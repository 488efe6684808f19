package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emirhank/campuscore/internal/app/models"
)

func records(statuses ...models.AttendanceStatus) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, st := range statuses {
		out = append(out, models.AttendanceRecord{Status: st})
	}
	return out
}

func TestAttendanceExcludesHolidays(t *testing.T) {
	s := Attendance(records(
		models.AttendancePresent,
		models.AttendancePresent,
		models.AttendanceAbsent,
		models.AttendanceHoliday,
	))

	assert.Equal(t, 2, s.Present)
	assert.Equal(t, 1, s.Absent)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 67, s.Percentage) // 2/3 rounded
}

func TestAttendanceLeaveCountsAgainstPercentage(t *testing.T) {
	s := Attendance(records(
		models.AttendancePresent,
		models.AttendanceLeave,
	))

	assert.Equal(t, 1, s.Leave)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 50, s.Percentage)
}

func TestAttendanceEmpty(t *testing.T) {
	s := Attendance(nil)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.Percentage)
}

func TestAttendanceOnlyHolidays(t *testing.T) {
	s := Attendance(records(models.AttendanceHoliday, models.AttendanceHoliday))

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.Percentage)
}

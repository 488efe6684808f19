package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/app/services"
	"github.com/emirhank/campuscore/internal/middleware"
)

// AttendanceController handles attendance marking and statistics
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// MarkAttendance records one attendance slot
// @Summary Mark attendance
// @Description Records one (student, subject, date) slot; re-marking overwrites
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Attendance slot"
// @Success 201 {object} dto.APIResponse{data=models.AttendanceRecord} "Attendance marked"
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance data"
// @Failure 404 {object} dto.ErrorResponse "Student or subject not found"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.attendanceService.Mark(req, ctx.GetString("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// DeleteAttendance removes one attendance record
// @Summary Delete an attendance record
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance record ID"
// @Success 204 "Attendance record deleted"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /attendance/{id} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	if err := c.attendanceService.Delete(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// GetStudentAttendance lists a student's attendance records
// @Summary Student attendance records
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param subjectId query string false "Filter by subject"
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceRecord} "Records retrieved"
// @Router /attendance/students/{studentId} [get]
func (c *AttendanceController) GetStudentAttendance(ctx *gin.Context) {
	records := c.attendanceService.ForStudent(ctx.Param("studentId"), ctx.Query("subjectId"))
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      records,
		Timestamp: time.Now(),
	})
}

// GetStudentAttendanceStats aggregates a student's attendance
// @Summary Student attendance statistics
// @Description Holidays are excluded from the percentage denominator
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param subjectId query string false "Filter by subject"
// @Success 200 {object} dto.APIResponse{data=compute.AttendanceStats} "Statistics computed"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /attendance/students/{studentId}/stats [get]
func (c *AttendanceController) GetStudentAttendanceStats(ctx *gin.Context) {
	stats, err := c.attendanceService.StudentStats(ctx.Param("studentId"), ctx.Query("subjectId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}

// GetSubjectAttendanceStats aggregates a subject cohort's attendance
// @Summary Subject attendance statistics
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param subjectId path string true "Subject ID"
// @Param date query string false "Single date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=compute.AttendanceStats} "Statistics computed"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /attendance/subjects/{subjectId}/stats [get]
func (c *AttendanceController) GetSubjectAttendanceStats(ctx *gin.Context) {
	stats, err := c.attendanceService.SubjectStats(ctx.Param("subjectId"), ctx.Query("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}

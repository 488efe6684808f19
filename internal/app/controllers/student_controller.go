package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/app/services"
	"github.com/emirhank/campuscore/internal/middleware"
)

// StudentController handles student record operations
type StudentController struct {
	studentService *services.StudentService
	examService    *services.ExamService
	feeService     *services.FeeService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, examService *services.ExamService, feeService *services.FeeService) *StudentController {
	return &StudentController{
		studentService: studentService,
		examService:    examService,
		feeService:     feeService,
	}
}

// CreateStudent admits a new student
// @Summary Admit a student
// @Description Registers a student and assigns a unique enrollment number
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Student true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student admitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid student data"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var student models.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.studentService.Create(student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// GetAllStudents lists all students
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.studentService.List(),
		Timestamp: time.Now(),
	})
}

// GetStudentByID retrieves one student with recomputed derived fields
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.Get(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// UpdateStudent updates a student record
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body models.Student true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var student models.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	student.ID = ctx.Param("id")

	if err := c.studentService.Update(student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent removes a student record
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 204 "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// GetStudentReport returns the graded academic report for one student
// @Summary Student report
// @Description Grades every stored result and aggregates CGPA and attendance
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentReport} "Report generated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/report [get]
func (c *StudentController) GetStudentReport(ctx *gin.Context) {
	report, err := c.examService.Report(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// GetStudentFeeStatus returns the fee ledger summary for one student
// @Summary Student fee status
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.FeeStatus} "Fee status"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/fees [get]
func (c *StudentController) GetStudentFeeStatus(ctx *gin.Context) {
	status, err := c.feeService.Status(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      status,
		Timestamp: time.Now(),
	})
}

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

// ExamController handles exams and result recording
type ExamController struct {
	examService *services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// CreateExam registers an exam definition
// @Summary Create an exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Exam true "Exam information"
// @Success 201 {object} dto.APIResponse{data=models.Exam} "Exam created"
// @Failure 400 {object} dto.ErrorResponse "Invalid exam data"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var exam models.Exam
	if err := ctx.ShouldBindJSON(&exam); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.examService.CreateExam(exam)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// GetAllExams lists all exams
// @Summary List exams
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Exam} "Exams retrieved"
// @Router /exams [get]
func (c *ExamController) GetAllExams(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.examService.ListExams(),
		Timestamp: time.Now(),
	})
}

// UpdateExam updates an exam definition
// @Summary Update an exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Param request body models.Exam true "Updated exam information"
// @Success 200 {object} dto.APIResponse{data=models.Exam} "Exam updated"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	var exam models.Exam
	if err := ctx.ShouldBindJSON(&exam); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	exam.ID = ctx.Param("id")

	if err := c.examService.UpdateExam(exam); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      exam,
		Timestamp: time.Now(),
	})
}

// DeleteExam removes an exam definition
// @Summary Delete an exam
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Success 204 "Exam deleted"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	if err := c.examService.DeleteExam(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// RecordResult records marks for one student in one exam
// @Summary Record a result
// @Description Enforces 0 <= marks <= exam max marks; re-recording replaces
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordResultRequest true "Result information"
// @Success 201 {object} dto.APIResponse{data=models.Result} "Result recorded"
// @Failure 400 {object} dto.ErrorResponse "Marks out of range"
// @Failure 404 {object} dto.ErrorResponse "Exam or student not found"
// @Router /results [post]
func (c *ExamController) RecordResult(ctx *gin.Context) {
	var req dto.RecordResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid result data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.examService.RecordResult(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// DeleteResult removes a result record
// @Summary Delete a result
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Result ID"
// @Success 204 "Result deleted"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /results/{id} [delete]
func (c *ExamController) DeleteResult(ctx *gin.Context) {
	if err := c.examService.DeleteResult(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

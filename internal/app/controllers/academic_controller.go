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

// AcademicController handles the course, branch and subject hierarchy
type AcademicController struct {
	academicService *services.AcademicService
}

// NewAcademicController creates a new AcademicController
func NewAcademicController(academicService *services.AcademicService) *AcademicController {
	return &AcademicController{academicService: academicService}
}

// CreateCourse registers a course tree
// @Summary Create a course
// @Description Registers a course with its branches and subjects
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Course true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid course data"
// @Router /courses [post]
func (c *AcademicController) CreateCourse(ctx *gin.Context) {
	var course models.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.academicService.Create(course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// GetAllCourses lists all courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved"
// @Router /courses [get]
func (c *AcademicController) GetAllCourses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.academicService.List(),
		Timestamp: time.Now(),
	})
}

// GetCourseByID retrieves one course tree
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *AcademicController) GetCourseByID(ctx *gin.Context) {
	course, err := c.academicService.Get(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// UpdateCourse replaces a course tree
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body models.Course true "Updated course information"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [put]
func (c *AcademicController) UpdateCourse(ctx *gin.Context) {
	var course models.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	course.ID = ctx.Param("id")

	if err := c.academicService.Update(course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// DeleteCourse removes a course
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 204 "Course deleted"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *AcademicController) DeleteCourse(ctx *gin.Context) {
	if err := c.academicService.Delete(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

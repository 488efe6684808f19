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

// FacultyController handles faculty record operations
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// CreateFaculty appoints a new faculty member
// @Summary Appoint a faculty member
// @Description Registers a faculty member and assigns a unique employee code
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Faculty true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=models.Faculty} "Faculty appointed"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty data"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var faculty models.Faculty
	if err := ctx.ShouldBindJSON(&faculty); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.facultyService.Create(faculty)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// GetAllFaculty lists all faculty members
// @Summary List faculty
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty} "Faculty retrieved"
// @Router /faculty [get]
func (c *FacultyController) GetAllFaculty(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.facultyService.List(),
		Timestamp: time.Now(),
	})
}

// GetFacultyByID retrieves one faculty member
// @Summary Get faculty by ID
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty retrieved"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	faculty, err := c.facultyService.Get(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// UpdateFaculty updates a faculty record
// @Summary Update a faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param request body models.Faculty true "Updated faculty information"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty updated"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	var faculty models.Faculty
	if err := ctx.ShouldBindJSON(&faculty); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	faculty.ID = ctx.Param("id")

	if err := c.facultyService.Update(faculty); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      faculty,
		Timestamp: time.Now(),
	})
}

// DeleteFaculty removes a faculty record
// @Summary Delete a faculty member
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 204 "Faculty deleted"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	if err := c.facultyService.Delete(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

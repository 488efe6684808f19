package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/app/services"
	"github.com/emirhank/campuscore/internal/middleware"
)

// AdminController handles cross-cutting administration endpoints
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// GetDashboard returns landing-page counters
// @Summary Dashboard counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardCounts} "Counters computed"
// @Router /admin/dashboard [get]
func (c *AdminController) GetDashboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.adminService.Dashboard(),
		Timestamp: time.Now(),
	})
}

// ResetData discards all collections and reinstalls seed data
// @Summary Reset to seed data
// @Description The session survives; everything else is regenerated
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Store reset"
// @Router /admin/reset [post]
func (c *AdminController) ResetData(ctx *gin.Context) {
	if err := c.adminService.Reset(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Store reset to seed data"},
		Timestamp: time.Now(),
	})
}

// SaveSnapshot writes the snapshot document immediately
// @Summary Save snapshot
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Snapshot saved"
// @Router /admin/save [post]
func (c *AdminController) SaveSnapshot(ctx *gin.Context) {
	if err := c.adminService.SaveNow(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Snapshot saved"},
		Timestamp: time.Now(),
	})
}

// ExportCollection downloads one collection as CSV
// @Summary Export a collection
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Param collection path string true "Collection name (students, faculty, attendance, results, feePayments, salaries, books)"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} dto.ErrorResponse "Unknown collection"
// @Router /admin/export/{collection} [get]
func (c *AdminController) ExportCollection(ctx *gin.Context) {
	collection := ctx.Param("collection")
	data, err := c.adminService.Export(collection)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown collection")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", collection))
	ctx.Data(http.StatusOK, "text/csv", data)
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/app/services"
	"github.com/emirhank/campuscore/internal/middleware"
)

// PayrollController handles salary generation and disbursement
type PayrollController struct {
	payrollService *services.PayrollService
}

// NewPayrollController creates a new PayrollController
func NewPayrollController(payrollService *services.PayrollService) *PayrollController {
	return &PayrollController{payrollService: payrollService}
}

// GeneratePayroll runs payroll for one faculty member and month
// @Summary Generate payroll
// @Description Derives the full breakdown from the basic salary; one record per month
// @Tags payroll
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GeneratePayrollRequest true "Payroll request"
// @Success 201 {object} dto.APIResponse{data=models.Salary} "Payroll generated"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Salary already generated for this month"
// @Router /payroll [post]
func (c *PayrollController) GeneratePayroll(ctx *gin.Context) {
	var req dto.GeneratePayrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payroll data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	salary, err := c.payrollService.Generate(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      salary,
		Timestamp: time.Now(),
	})
}

// PreviewPayroll computes a breakdown without recording it
// @Summary Preview payroll
// @Tags payroll
// @Produce json
// @Security BearerAuth
// @Param facultyId path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=compute.SalaryBreakdown} "Breakdown computed"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /payroll/preview/{facultyId} [get]
func (c *PayrollController) PreviewPayroll(ctx *gin.Context) {
	breakdown, err := c.payrollService.Preview(ctx.Param("facultyId"), 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      breakdown,
		Timestamp: time.Now(),
	})
}

// MarkSalaryPaid flips a pending salary record to paid
// @Summary Mark salary paid
// @Tags payroll
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary ID"
// @Success 200 {object} dto.APIResponse{data=models.Salary} "Salary marked paid"
// @Failure 404 {object} dto.ErrorResponse "Salary not found"
// @Router /payroll/{id}/pay [post]
func (c *PayrollController) MarkSalaryPaid(ctx *gin.Context) {
	salary, err := c.payrollService.MarkPaid(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      salary,
		Timestamp: time.Now(),
	})
}

// GetAllSalaries lists salary records
// @Summary List salaries
// @Tags payroll
// @Produce json
// @Security BearerAuth
// @Param facultyId query string false "Filter by faculty"
// @Success 200 {object} dto.APIResponse{data=[]models.Salary} "Salaries retrieved"
// @Router /payroll [get]
func (c *PayrollController) GetAllSalaries(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.payrollService.List(ctx.Query("facultyId")),
		Timestamp: time.Now(),
	})
}

// DeleteSalary removes a salary record
// @Summary Delete a salary record
// @Tags payroll
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary ID"
// @Success 204 "Salary deleted"
// @Failure 404 {object} dto.ErrorResponse "Salary not found"
// @Router /payroll/{id} [delete]
func (c *PayrollController) DeleteSalary(ctx *gin.Context) {
	if err := c.payrollService.Delete(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

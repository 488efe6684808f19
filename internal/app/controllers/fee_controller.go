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

// FeeController handles fee structures and payment recording
type FeeController struct {
	feeService *services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService *services.FeeService) *FeeController {
	return &FeeController{feeService: feeService}
}

// CreateFeeStructure registers the fee catalog for one cohort
// @Summary Create a fee structure
// @Description The stored total is always recomputed from the components
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.FeeStructure true "Fee structure"
// @Success 201 {object} dto.APIResponse{data=models.FeeStructure} "Fee structure created"
// @Failure 400 {object} dto.ErrorResponse "Invalid fee structure"
// @Router /fees/structures [post]
func (c *FeeController) CreateFeeStructure(ctx *gin.Context) {
	var fs models.FeeStructure
	if err := ctx.ShouldBindJSON(&fs); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid fee structure data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.feeService.CreateStructure(fs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// GetAllFeeStructures lists all fee structures
// @Summary List fee structures
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.FeeStructure} "Fee structures retrieved"
// @Router /fees/structures [get]
func (c *FeeController) GetAllFeeStructures(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.feeService.ListStructures(),
		Timestamp: time.Now(),
	})
}

// UpdateFeeStructure updates a fee structure
// @Summary Update a fee structure
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fee structure ID"
// @Param request body models.FeeStructure true "Updated fee structure"
// @Success 200 {object} dto.APIResponse{data=models.FeeStructure} "Fee structure updated"
// @Failure 404 {object} dto.ErrorResponse "Fee structure not found"
// @Router /fees/structures/{id} [put]
func (c *FeeController) UpdateFeeStructure(ctx *gin.Context) {
	var fs models.FeeStructure
	if err := ctx.ShouldBindJSON(&fs); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid fee structure data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	fs.ID = ctx.Param("id")

	if err := c.feeService.UpdateStructure(fs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      fs,
		Timestamp: time.Now(),
	})
}

// DeleteFeeStructure removes a fee structure
// @Summary Delete a fee structure
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fee structure ID"
// @Success 204 "Fee structure deleted"
// @Failure 404 {object} dto.ErrorResponse "Fee structure not found"
// @Router /fees/structures/{id} [delete]
func (c *FeeController) DeleteFeeStructure(ctx *gin.Context) {
	if err := c.feeService.DeleteStructure(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// RecordPayment records a fee payment
// @Summary Record a payment
// @Description Assigns a unique receipt number and derives the payment status
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordPaymentRequest true "Payment information"
// @Success 201 {object} dto.APIResponse{data=models.FeePayment} "Payment recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid payment data"
// @Failure 404 {object} dto.ErrorResponse "Student or fee structure not found"
// @Router /fees/payments [post]
func (c *FeeController) RecordPayment(ctx *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	payment, err := c.feeService.RecordPayment(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      payment,
		Timestamp: time.Now(),
	})
}

// GetAllPayments lists payments, optionally filtered by student
// @Summary List payments
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param studentId query string false "Filter by student"
// @Success 200 {object} dto.APIResponse{data=[]models.FeePayment} "Payments retrieved"
// @Router /fees/payments [get]
func (c *FeeController) GetAllPayments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.feeService.ListPayments(ctx.Query("studentId")),
		Timestamp: time.Now(),
	})
}

// DeletePayment removes a payment record
// @Summary Delete a payment
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 204 "Payment deleted"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Router /fees/payments/{id} [delete]
func (c *FeeController) DeletePayment(ctx *gin.Context) {
	if err := c.feeService.DeletePayment(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

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

// LibraryController handles the book catalog and loan transactions
type LibraryController struct {
	libraryService *services.LibraryService
}

// NewLibraryController creates a new LibraryController
func NewLibraryController(libraryService *services.LibraryService) *LibraryController {
	return &LibraryController{libraryService: libraryService}
}

// AddBook registers a library title
// @Summary Add a book
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Book true "Book information"
// @Success 201 {object} dto.APIResponse{data=models.Book} "Book added"
// @Failure 400 {object} dto.ErrorResponse "Invalid book data"
// @Router /library/books [post]
func (c *LibraryController) AddBook(ctx *gin.Context) {
	var book models.Book
	if err := ctx.ShouldBindJSON(&book); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid book data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.libraryService.AddBook(book)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// GetAllBooks lists the catalog
// @Summary List books
// @Tags library
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Book} "Books retrieved"
// @Router /library/books [get]
func (c *LibraryController) GetAllBooks(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.libraryService.ListBooks(),
		Timestamp: time.Now(),
	})
}

// UpdateBook updates a book record
// @Summary Update a book
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Param request body models.Book true "Updated book information"
// @Success 200 {object} dto.APIResponse{data=models.Book} "Book updated"
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Router /library/books/{id} [put]
func (c *LibraryController) UpdateBook(ctx *gin.Context) {
	var book models.Book
	if err := ctx.ShouldBindJSON(&book); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid book data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	book.ID = ctx.Param("id")

	if err := c.libraryService.UpdateBook(book); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      book,
		Timestamp: time.Now(),
	})
}

// DeleteBook removes a title
// @Summary Delete a book
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Success 204 "Book deleted"
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Router /library/books/{id} [delete]
func (c *LibraryController) DeleteBook(ctx *gin.Context) {
	if err := c.libraryService.DeleteBook(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// IssueBook lends one copy to a student
// @Summary Issue a book
// @Description Opens a loan transaction and decrements available copies
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IssueBookRequest true "Issue information"
// @Success 201 {object} dto.APIResponse{data=models.LibraryTransaction} "Book issued"
// @Failure 400 {object} dto.ErrorResponse "No copies available"
// @Failure 404 {object} dto.ErrorResponse "Book or student not found"
// @Router /library/issue [post]
func (c *LibraryController) IssueBook(ctx *gin.Context) {
	var req dto.IssueBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid issue data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	txn, err := c.libraryService.Issue(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      txn,
		Timestamp: time.Now(),
	})
}

// ReturnBook closes a loan
// @Summary Return a book
// @Description Stamps the return date and fine and restores the copy count
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ReturnBookRequest true "Return information"
// @Success 200 {object} dto.APIResponse{data=models.LibraryTransaction} "Book returned"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 409 {object} dto.ErrorResponse "Transaction already returned"
// @Router /library/return [post]
func (c *LibraryController) ReturnBook(ctx *gin.Context) {
	var req dto.ReturnBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid return data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	txn, err := c.libraryService.Return(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      txn,
		Timestamp: time.Now(),
	})
}

// GetAllTransactions lists loans, optionally filtered by student
// @Summary List library transactions
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param studentId query string false "Filter by student"
// @Success 200 {object} dto.APIResponse{data=[]models.LibraryTransaction} "Transactions retrieved"
// @Router /library/transactions [get]
func (c *LibraryController) GetAllTransactions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.libraryService.ListTransactions(ctx.Query("studentId")),
		Timestamp: time.Now(),
	})
}

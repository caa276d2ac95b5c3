package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smishra291/Ebook-Management-System/internal/http/response"
	"github.com/smishra291/Ebook-Management-System/internal/platform/apierr"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
	"github.com/smishra291/Ebook-Management-System/internal/services"
)

type LibraryHandler struct {
	log            *logger.Logger
	libraryService services.LibraryService
}

func NewLibraryHandler(log *logger.Logger, libraryService services.LibraryService) *LibraryHandler {
	return &LibraryHandler{log: log.With("handler", "LibraryHandler"), libraryService: libraryService}
}

func (lh *LibraryHandler) GetInventory(c *gin.Context) {
	items, err := lh.libraryService.ListInventory(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, lh.log, err)
		return
	}
	response.RespondOK(c, gin.H{"inventory": items})
}

func (lh *LibraryHandler) BorrowBook(c *gin.Context) {
	var req struct {
		UserID  string `json:"user_id"`
		BookID  string `json:"book_id"`
		DueDate string `json:"due_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.BookID == "" || req.DueDate == "" {
		response.RespondAPIError(c, lh.log, apierr.Validation("User ID, Book ID, and Due Date are required"))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.RespondAPIError(c, lh.log, apierr.Validation("Invalid user_id"))
		return
	}
	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		response.RespondAPIError(c, lh.log, apierr.Validation("Invalid book_id"))
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		response.RespondAPIError(c, lh.log, apierr.Validation("Invalid due_date"))
		return
	}

	borrowID, err := lh.libraryService.BorrowBook(c.Request.Context(), userID, bookID, dueDate)
	if err != nil {
		response.RespondAPIError(c, lh.log, err)
		return
	}

	response.RespondCreated(c, gin.H{
		"message":   "Book borrowed successfully",
		"borrow_id": borrowID.String(),
	})
}

func (lh *LibraryHandler) GetBorrowedBooks(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.RespondAPIError(c, lh.log, apierr.Validation("Invalid user_id"))
		return
	}

	rows, err := lh.libraryService.ListBorrowed(c.Request.Context(), userID)
	if err != nil {
		response.RespondAPIError(c, lh.log, err)
		return
	}
	response.RespondOK(c, gin.H{"borrowed_books": rows})
}

func (lh *LibraryHandler) ReturnBook(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id"`
		BookID string `json:"book_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.BookID == "" {
		response.RespondAPIError(c, lh.log, apierr.Validation("User ID and Book ID are required"))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.RespondAPIError(c, lh.log, apierr.Validation("Invalid user_id"))
		return
	}
	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		response.RespondAPIError(c, lh.log, apierr.Validation("Invalid book_id"))
		return
	}

	if err := lh.libraryService.ReturnBook(c.Request.Context(), userID, bookID); err != nil {
		response.RespondAPIError(c, lh.log, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "Book returned successfully"})
}

// parseDate accepts both a bare date and a full RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

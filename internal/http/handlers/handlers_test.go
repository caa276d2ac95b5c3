package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smishra291/Ebook-Management-System/internal/data/graph"
	"github.com/smishra291/Ebook-Management-System/internal/data/repos"
	"github.com/smishra291/Ebook-Management-System/internal/platform/apierr"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
	"github.com/smishra291/Ebook-Management-System/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func errorField(t *testing.T, body map[string]any, key string) string {
	t.Helper()
	env, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("response has no error envelope: %v", body)
	}
	s, _ := env[key].(string)
	return s
}

type fakeAuthService struct {
	result *services.LoginResult
	err    error
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	return f.result, f.err
}

type fakeLibraryService struct {
	inventory []repos.InventoryItem
	borrowID  uuid.UUID
	borrowed  []repos.BorrowedBookRow
	err       error
}

func (f *fakeLibraryService) ListInventory(ctx context.Context) ([]repos.InventoryItem, error) {
	return f.inventory, f.err
}

func (f *fakeLibraryService) BorrowBook(ctx context.Context, userID, bookID uuid.UUID, dueDate time.Time) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	return f.borrowID, nil
}

func (f *fakeLibraryService) ListBorrowed(ctx context.Context, userID uuid.UUID) ([]repos.BorrowedBookRow, error) {
	return f.borrowed, f.err
}

func (f *fakeLibraryService) ReturnBook(ctx context.Context, userID, bookID uuid.UUID) error {
	return f.err
}

type fakeReviewService struct {
	reviews []repos.ReviewRow
	avg     float64
	err     error
}

func (f *fakeReviewService) AddReview(ctx context.Context, bookID, userID uuid.UUID, rating int, reviewText string) error {
	return f.err
}

func (f *fakeReviewService) ListReviews(ctx context.Context, bookID uuid.UUID) ([]repos.ReviewRow, error) {
	return f.reviews, f.err
}

func (f *fakeReviewService) AverageRating(ctx context.Context, bookID uuid.UUID) (float64, error) {
	return f.avg, f.err
}

type fakeRecommendationService struct {
	recs []graph.Recommendation
	err  error
}

func (f *fakeRecommendationService) Recommend(ctx context.Context, userID uuid.UUID) ([]graph.Recommendation, error) {
	return f.recs, f.err
}

func authRouter(t *testing.T, svc services.AuthService) *gin.Engine {
	r := gin.New()
	h := NewAuthHandler(testLogger(t), svc)
	r.POST("/login", h.Login)
	return r
}

func TestLoginSuccess(t *testing.T) {
	userID := uuid.New()
	r := authRouter(t, &fakeAuthService{result: &services.LoginResult{UserID: userID, Role: "member"}})

	w := doJSON(t, r, http.MethodPost, "/login", gin.H{"email": "a@b.com", "password": "pw"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["user_id"] != userID.String() {
		t.Errorf("user_id = %v, want %s", body["user_id"], userID)
	}
	if body["role"] != "member" {
		t.Errorf("role = %v, want member", body["role"])
	}
}

func TestLoginBadBody(t *testing.T) {
	r := authRouter(t, &fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString("not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if code := errorField(t, decodeBody(t, w), "code"); code != apierr.CodeValidation {
		t.Errorf("code = %q, want %q", code, apierr.CodeValidation)
	}
}

func TestLoginUnauthorized(t *testing.T) {
	r := authRouter(t, &fakeAuthService{err: apierr.Unauthorized("Invalid email or password")})

	w := doJSON(t, r, http.MethodPost, "/login", gin.H{"email": "a@b.com", "password": "bad"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := errorField(t, decodeBody(t, w), "code"); code != apierr.CodeUnauthorized {
		t.Errorf("code = %q, want %q", code, apierr.CodeUnauthorized)
	}
}

func TestLoginInternalErrorIsSanitized(t *testing.T) {
	r := authRouter(t, &fakeAuthService{err: errors.New("pq: connection refused on 10.0.0.3")})

	w := doJSON(t, r, http.MethodPost, "/login", gin.H{"email": "a@b.com", "password": "pw"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	body := decodeBody(t, w)
	if msg := errorField(t, body, "message"); msg != "internal error" {
		t.Errorf("message = %q, want sanitized %q", msg, "internal error")
	}
	if bytes.Contains(w.Body.Bytes(), []byte("10.0.0.3")) {
		t.Errorf("raw cause leaked to client: %s", w.Body.String())
	}
}

func libraryRouter(t *testing.T, svc services.LibraryService) *gin.Engine {
	r := gin.New()
	h := NewLibraryHandler(testLogger(t), svc)
	r.GET("/inventory", h.GetInventory)
	r.POST("/borrow", h.BorrowBook)
	r.GET("/borrowed/:user_id", h.GetBorrowedBooks)
	r.POST("/return", h.ReturnBook)
	return r
}

func TestBorrowBookCreated(t *testing.T) {
	borrowID := uuid.New()
	r := libraryRouter(t, &fakeLibraryService{borrowID: borrowID})

	w := doJSON(t, r, http.MethodPost, "/borrow", gin.H{
		"user_id":  uuid.New().String(),
		"book_id":  uuid.New().String(),
		"due_date": "2026-09-15",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["borrow_id"] != borrowID.String() {
		t.Errorf("borrow_id = %v, want %s", body["borrow_id"], borrowID)
	}
}

func TestBorrowBookMissingFields(t *testing.T) {
	r := libraryRouter(t, &fakeLibraryService{})

	w := doJSON(t, r, http.MethodPost, "/borrow", gin.H{"user_id": uuid.New().String()})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if code := errorField(t, decodeBody(t, w), "code"); code != apierr.CodeValidation {
		t.Errorf("code = %q, want %q", code, apierr.CodeValidation)
	}
}

func TestBorrowBookInvalidDate(t *testing.T) {
	r := libraryRouter(t, &fakeLibraryService{})

	w := doJSON(t, r, http.MethodPost, "/borrow", gin.H{
		"user_id":  uuid.New().String(),
		"book_id":  uuid.New().String(),
		"due_date": "next tuesday",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestBorrowBookLimitExceeded(t *testing.T) {
	r := libraryRouter(t, &fakeLibraryService{err: apierr.LimitExceeded("You have already borrowed this book")})

	w := doJSON(t, r, http.MethodPost, "/borrow", gin.H{
		"user_id":  uuid.New().String(),
		"book_id":  uuid.New().String(),
		"due_date": "2026-09-15",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if code := errorField(t, body, "code"); code != apierr.CodeLimitExceeded {
		t.Errorf("code = %q, want %q", code, apierr.CodeLimitExceeded)
	}
	if msg := errorField(t, body, "message"); msg != "You have already borrowed this book" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestGetBorrowedBooksBadUserID(t *testing.T) {
	r := libraryRouter(t, &fakeLibraryService{})

	req := httptest.NewRequest(http.MethodGet, "/borrowed/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetInventory(t *testing.T) {
	bookID := uuid.New()
	r := libraryRouter(t, &fakeLibraryService{inventory: []repos.InventoryItem{
		{BookID: bookID, Title: "Dune", Author: "Frank Herbert", Quantity: 3},
	}})

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	items, ok := body["inventory"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("unexpected inventory payload: %v", body)
	}
}

func TestReturnBookNotFound(t *testing.T) {
	r := libraryRouter(t, &fakeLibraryService{err: apierr.NotFound("No active borrow found for this book")})

	w := doJSON(t, r, http.MethodPost, "/return", gin.H{
		"user_id": uuid.New().String(),
		"book_id": uuid.New().String(),
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func reviewRouter(t *testing.T, svc services.ReviewService) *gin.Engine {
	r := gin.New()
	h := NewReviewHandler(testLogger(t), svc)
	r.POST("/reviews", h.AddReview)
	r.GET("/reviews/:book_id", h.GetReviews)
	r.GET("/books/:book_id/rating", h.GetAverageRating)
	return r
}

func TestAddReviewCreated(t *testing.T) {
	r := reviewRouter(t, &fakeReviewService{})

	w := doJSON(t, r, http.MethodPost, "/reviews", gin.H{
		"book_id":     uuid.New().String(),
		"user_id":     uuid.New().String(),
		"rating":      4,
		"review_text": "solid",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
}

func TestAddReviewMissingRating(t *testing.T) {
	r := reviewRouter(t, &fakeReviewService{})

	w := doJSON(t, r, http.MethodPost, "/reviews", gin.H{
		"book_id": uuid.New().String(),
		"user_id": uuid.New().String(),
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetAverageRating(t *testing.T) {
	r := reviewRouter(t, &fakeReviewService{avg: 3.5})

	req := httptest.NewRequest(http.MethodGet, "/books/"+uuid.New().String()+"/rating", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if avg, _ := body["average_rating"].(float64); avg != 3.5 {
		t.Errorf("average_rating = %v, want 3.5", body["average_rating"])
	}
}

func TestGetRecommendations(t *testing.T) {
	r := gin.New()
	h := NewRecommendationHandler(testLogger(t), &fakeRecommendationService{recs: []graph.Recommendation{
		{Title: "Foundation", Author: "Isaac Asimov", Year: 1951},
	}})
	r.GET("/recommendations/:user_id", h.GetRecommendations)

	req := httptest.NewRequest(http.MethodGet, "/recommendations/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	recs, ok := body["recommendations"].([]any)
	if !ok || len(recs) != 1 {
		t.Fatalf("unexpected recommendations payload: %v", body)
	}
}

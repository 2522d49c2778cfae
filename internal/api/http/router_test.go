package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/legal-office-service/internal/api/http/handlers"
	"github.com/spec-kit/legal-office-service/internal/auth"
	"github.com/spec-kit/legal-office-service/internal/config"
	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/events"
	"github.com/spec-kit/legal-office-service/internal/observability"
	"github.com/spec-kit/legal-office-service/internal/repository"
	"github.com/spec-kit/legal-office-service/internal/service"
)

type stubAccountRepo struct {
	byEmail map[string]*domain.Account
}

func (r *stubAccountRepo) Create(ctx context.Context, account *domain.Account) error { return nil }
func (r *stubAccountRepo) Update(ctx context.Context, id string, patch domain.AccountPatch) error {
	return nil
}
func (r *stubAccountRepo) Delete(ctx context.Context, id string) error { return nil }
func (r *stubAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return nil, pgx.ErrNoRows
}
func (r *stubAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return account, nil
}
func (r *stubAccountRepo) List(ctx context.Context, term string, limit, offset int) ([]domain.Account, int, error) {
	return []domain.Account{}, 0, nil
}

type stubCategoryRepo struct {
	created []*domain.Category
}

func (r *stubCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	r.created = append(r.created, category)
	return nil
}
func (r *stubCategoryRepo) Update(ctx context.Context, id string, patch domain.CategoryPatch) error {
	return pgx.ErrNoRows
}
func (r *stubCategoryRepo) Delete(ctx context.Context, id string) error { return pgx.ErrNoRows }
func (r *stubCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return nil, pgx.ErrNoRows
}
func (r *stubCategoryRepo) GetByNameAndOwner(ctx context.Context, name string, ownerID *string) (*domain.Category, error) {
	return nil, pgx.ErrNoRows
}
func (r *stubCategoryRepo) List(ctx context.Context, term string, limit, offset int) ([]domain.Category, int, error) {
	return []domain.Category{}, 0, nil
}

type stubContactRepo struct {
	created []*domain.ContactMessage
}

func (r *stubContactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	r.created = append(r.created, msg)
	return nil
}
func (r *stubContactRepo) Update(ctx context.Context, id string, patch domain.ContactMessagePatch) error {
	return pgx.ErrNoRows
}
func (r *stubContactRepo) Delete(ctx context.Context, id string) error { return pgx.ErrNoRows }
func (r *stubContactRepo) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return nil, pgx.ErrNoRows
}
func (r *stubContactRepo) List(ctx context.Context, term string, limit, offset int) ([]domain.ContactMessage, int, error) {
	return []domain.ContactMessage{}, 0, nil
}

type stubLeaveRepo struct {
	all []domain.LeaveApplication
}

func (r *stubLeaveRepo) Create(ctx context.Context, leave *domain.LeaveApplication) error {
	return nil
}
func (r *stubLeaveRepo) Update(ctx context.Context, id string, patch domain.LeaveApplicationPatch, decidedByID *string) error {
	return pgx.ErrNoRows
}
func (r *stubLeaveRepo) Delete(ctx context.Context, id string) error { return pgx.ErrNoRows }
func (r *stubLeaveRepo) GetByID(ctx context.Context, id string) (*domain.LeaveApplication, error) {
	return nil, pgx.ErrNoRows
}
func (r *stubLeaveRepo) List(ctx context.Context, term string, limit, offset int) ([]domain.LeaveApplication, int, error) {
	return []domain.LeaveApplication{}, 0, nil
}
func (r *stubLeaveRepo) ListAll(ctx context.Context) ([]domain.LeaveApplication, error) {
	return r.all, nil
}

type testEnv struct {
	app      *fiber.App
	accounts *stubAccountRepo
	contacts *stubContactRepo
	leaves   *stubLeaveRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	accounts := &stubAccountRepo{byEmail: make(map[string]*domain.Account)}
	categories := &stubCategoryRepo{}
	contacts := &stubContactRepo{}
	leaves := &stubLeaveRepo{}

	sessions := auth.NewSessionManager(config.SessionConfig{
		Secret:           "router-test-secret",
		CookieName:       "office_session",
		TTLMinutes:       60,
		RememberTTLHours: 720,
	}, nil, nil)
	sessionMiddleware := auth.NewSessionMiddleware(sessions, accounts)
	dispatcher := events.NewInMemoryDispatcher()

	var (
		blogRepo       repository.BlogRepository
		departmentRepo repository.DepartmentRepository
		complaintRepo  repository.ComplaintRepository
		memoRepo       repository.MemoRepository
		reportRepo     repository.ReportRepository
	)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:      handlers.NewHealthHandler("test", "dev", nil, nil),
		Auth:        handlers.NewAuthHandler(service.NewAuthService(accounts, sessions)),
		Accounts:    handlers.NewAccountsHandler(service.NewAccountService(accounts, 10, bcrypt.MinCost)),
		Blogs:       handlers.NewBlogsHandler(service.NewBlogService(blogRepo, 10)),
		Categories:  handlers.NewCategoriesHandler(service.NewCategoryService(categories, 10)),
		Departments: handlers.NewDepartmentsHandler(service.NewDepartmentService(departmentRepo, 10)),
		Contacts:    handlers.NewContactsHandler(service.NewContactService(contacts, dispatcher, 10)),
		Complaints:  handlers.NewComplaintsHandler(service.NewComplaintService(complaintRepo, dispatcher, 10)),
		Memos:       handlers.NewMemosHandler(service.NewMemoService(memoRepo, 10)),
		Reports:     handlers.NewReportsHandler(service.NewReportService(reportRepo, 10)),
		Leaves:      handlers.NewLeavesHandler(service.NewLeaveService(leaves, dispatcher, 10)),
		Sessions:    sessionMiddleware,
	})

	return &testEnv{app: app, accounts: accounts, contacts: contacts, leaves: leaves}
}

func (env *testEnv) seedAccount(t *testing.T, email, password string, role domain.AccountRole) {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	env.accounts.byEmail[email] = &domain.Account{
		ID:           "acc-1",
		Name:         "Pat Clerk",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func (env *testEnv) login(t *testing.T, email, password string) *http.Cookie {
	t.Helper()
	resp, err := env.app.Test(formRequest("/api/auth/login", url.Values{
		"email":    {email},
		"password": {password},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "office_session" {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "clerk@office.example", "s3cret-pass", domain.RoleStaff)

	resp, err := env.app.Test(formRequest("/api/auth/login", url.Values{
		"email":    {"clerk@office.example"},
		"password": {"s3cret-pass"},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "/staff", body["redirectUrl"])

	cookie := resp.Cookies()
	require.NotEmpty(t, cookie)
	assert.Equal(t, "office_session", cookie[0].Name)
	assert.NotEmpty(t, cookie[0].Value)
	assert.True(t, cookie[0].HttpOnly)
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(formRequest("/api/auth/login", url.Values{
		"email":    {"nobody@office.example"},
		"password": {"whatever"},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["emailError"])
	assert.Equal(t, "Invalid email", body["emailErrorMessage"])
}

func TestProtectedRouteRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/users", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Unauthorized", body["message"])
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(http.StatusUnauthorized), body["status"])
}

func TestUsersListEnvelope(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "clerk@office.example", "s3cret-pass", domain.RoleStaff)
	cookie := env.login(t, "clerk@office.example", "s3cret-pass")

	req := httptest.NewRequest(fiber.MethodGet, "/api/users?page=1", nil)
	req.AddCookie(cookie)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Users fetched successfully", body["message"])
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data, "users")
	assert.Equal(t, float64(0), data["totalPages"])
	assert.Equal(t, float64(1), data["currentPage"])
}

func TestInvalidIntent(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "clerk@office.example", "s3cret-pass", domain.RoleStaff)
	cookie := env.login(t, "clerk@office.example", "s3cret-pass")

	req := formRequest("/api/categories", url.Values{
		"intent": {"upsert"},
		"name":   {"Estates"},
	})
	req.AddCookie(cookie)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Bad request - Invalid intent", body["message"])
	assert.Equal(t, false, body["success"])
}

func TestCategoryCreate(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "clerk@office.example", "s3cret-pass", domain.RoleStaff)
	cookie := env.login(t, "clerk@office.example", "s3cret-pass")

	req := formRequest("/api/categories", url.Values{
		"intent": {"create"},
		"name":   {"Estates"},
	})
	req.AddCookie(cookie)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Category created successfully", body["message"])
	assert.Equal(t, true, body["success"])
}

func TestContactCreateIsPublic(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(formRequest("/api/contacts", url.Values{
		"intent":  {"create"},
		"name":    {"Visitor"},
		"email":   {"visitor@example.com"},
		"message": {"I need help with a deed."},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Contact created successfully", body["message"])
	assert.Len(t, env.contacts.created, 1)
}

func TestContactUpdateNeedsSession(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(formRequest("/api/contacts", url.Values{
		"intent": {"update"},
		"id":     {"msg-1"},
		"name":   {"Changed"},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "clerk@office.example", "s3cret-pass", domain.RoleStaff)
	cookie := env.login(t, "clerk@office.example", "s3cret-pass")

	req := httptest.NewRequest(fiber.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cleared := resp.Cookies()
	require.NotEmpty(t, cleared)
	assert.Equal(t, "office_session", cleared[0].Name)
	assert.Empty(t, cleared[0].Value)
}

func TestAuthRoutesRejectWrongMethod(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/auth/login", "/api/auth/logout"} {
		resp, err := env.app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, path)
	}
}

func TestLeavesExportCSV(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "clerk@office.example", "s3cret-pass", domain.RoleStaff)
	cookie := env.login(t, "clerk@office.example", "s3cret-pass")

	env.leaves.all = []domain.LeaveApplication{
		{
			ID:            "leave-1",
			ApplicantName: "Pat Clerk",
			LeaveType:     "annual",
			StartDate:     time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
			Reason:        "family visit",
			Status:        domain.LeaveApproved,
		},
	}

	req := httptest.NewRequest(fiber.MethodGet, "/api/leaves/export", nil)
	req.AddCookie(cookie)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="leave-applications.csv"`,
		resp.Header.Get(fiber.HeaderContentDisposition))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Leave Type")
	assert.Contains(t, lines[1], "Pat Clerk")
	assert.Contains(t, lines[1], "2026-09-07")
	assert.Contains(t, lines[1], "approved")
}

func TestMissingRequiredField(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(formRequest("/api/contacts", url.Values{
		"intent": {"create"},
		"name":   {"Visitor"},
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "email is required", body["message"])
}

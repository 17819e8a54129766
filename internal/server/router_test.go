package server

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lagunaro/loansim-backend/internal/handlers"
	"github.com/lagunaro/loansim-backend/internal/logger"
	"github.com/lagunaro/loansim-backend/internal/middleware"
	"github.com/lagunaro/loansim-backend/internal/repos"
	"github.com/lagunaro/loansim-backend/internal/services"
	"github.com/lagunaro/loansim-backend/internal/sessions"
	"github.com/lagunaro/loansim-backend/internal/types"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.Simulation{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	store := sessions.NewMemoryStore()
	simulationRepo := repos.NewSimulationRepo(db, log)
	identity := services.NewIdentityService(log, store)
	simulation := services.NewSimulationService(log, simulationRepo, store, identity)

	router := NewRouter(RouterConfig{
		TemplatesGlob:      "../../web/templates/*.html",
		SessionMiddleware:  middleware.NewSessionMiddleware(log),
		IdentityMiddleware: middleware.NewIdentityMiddleware(log, identity),
		PageHandler:        handlers.NewPageHandler(simulation),
		IdentifyHandler:    handlers.NewIdentifyHandler(log, identity),
		SimulationHandler:  handlers.NewSimulationHandler(log, simulation),
		HistoryHandler:     handlers.NewHistoryHandler(log, simulation),
	})
	return router, db
}

func newBrowser(t *testing.T, router *gin.Engine) (*http.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &http.Client{Jar: jar}, srv
}

func countRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&types.Simulation{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return count
}

func TestFormWithoutIdentityRedirects(t *testing.T) {
	router, db := newTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		req := httptest.NewRequest(method, "/form", nil)
		if method == http.MethodPost {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusFound {
			t.Fatalf("%s /form without identity: status %d", method, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/identify" {
			t.Fatalf("%s /form redirect location: %q", method, loc)
		}
	}
	if n := countRows(t, db); n != 0 {
		t.Fatalf("guarded request wrote %d rows", n)
	}
}

func TestIdentifyValidation(t *testing.T) {
	router, db := newTestRouter(t)

	form := url.Values{"full_name": {"  "}, "national_id": {"12345678A"}}
	req := httptest.NewRequest(http.MethodPost, "/identify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("invalid identify should re-render with 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Complete the name and the national ID") {
		t.Fatalf("missing validation message in body")
	}
	if n := countRows(t, db); n != 0 {
		t.Fatalf("invalid identify wrote %d rows", n)
	}
}

func TestHistoryValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	form := url.Values{"national_id": {"   "}}
	req := httptest.NewRequest(http.MethodPost, "/history", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("empty lookup should re-render with 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Enter a valid national ID") {
		t.Fatalf("missing validation message in body")
	}
}

func TestHistoryDetailMissIsEmptyNotError(t *testing.T) {
	router, db := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/history/00000000Z", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("lookup miss: status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No simulation stored") {
		t.Fatalf("missing empty state in body")
	}
	if n := countRows(t, db); n != 0 {
		t.Fatalf("lookup created %d rows", n)
	}
}

func TestFullSubmissionFlow(t *testing.T) {
	router, db := newTestRouter(t)
	client, srv := newBrowser(t, router)

	// Identify with a messy identifier; the session must hold it normalized.
	identify := url.Values{"full_name": {"Ana García"}, "national_id": {" 12345678a "}}
	resp, err := client.PostForm(srv.URL+"/identify", identify)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("identify flow ended with %d", resp.StatusCode)
	}
	if resp.Request.URL.Path != "/form" {
		t.Fatalf("identify should land on /form, landed on %s", resp.Request.URL.Path)
	}

	answers := url.Values{
		"age": {"34"}, "income": {"42000"}, "initial_amount": {"150000"},
		"credit_score": {"710"}, "months_employed": {"96"}, "num_credits": {"2"},
		"interest_ratio": {"3.1"}, "duration": {"240"}, "debt_income_ratio": {"0.28"},
		"education": {"university"}, "mortgage": {"no"}, "dependents": {"1"},
		"guarantor": {"yes"}, "work_schedule": {"full-time"}, "marital_status": {"married"},
	}
	resp, err = client.PostForm(srv.URL+"/form", answers)
	if err != nil {
		t.Fatalf("submit form: %v", err)
	}
	body := readBody(t, resp)
	if resp.Request.URL.Path != "/confirmation" {
		t.Fatalf("submission should land on /confirmation, landed on %s", resp.Request.URL.Path)
	}
	if !strings.Contains(body, "12345678A") {
		t.Fatalf("confirmation does not show the normalized identifier")
	}

	if n := countRows(t, db); n != 1 {
		t.Fatalf("expected exactly one row, got %d", n)
	}
	var row types.Simulation
	if err := db.First(&row, "national_id = ?", "12345678A").Error; err != nil {
		t.Fatalf("stored row: %v", err)
	}
	if row.FullName != "Ana García" || row.Age != "34" || row.MaritalStatus != "married" {
		t.Fatalf("stored row mismatch: %+v", row)
	}

	// Lookup with different casing finds the same record.
	resp, err = client.Get(srv.URL + "/history/12345678a")
	if err != nil {
		t.Fatalf("history detail: %v", err)
	}
	body = readBody(t, resp)
	if !strings.Contains(body, "Ana García") {
		t.Fatalf("case-variant lookup did not find the record")
	}
}

func TestResubmissionReplacesWholesale(t *testing.T) {
	router, db := newTestRouter(t)
	client, srv := newBrowser(t, router)

	identify := url.Values{"full_name": {"Ana García"}, "national_id": {"12345678A"}}
	resp, err := client.PostForm(srv.URL+"/identify", identify)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	resp.Body.Close()

	first := url.Values{"age": {"34"}, "income": {"42000"}, "credit_score": {"710"}}
	if resp, err = client.PostForm(srv.URL+"/form", first); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	resp.Body.Close()

	// Second submission omits income and credit_score entirely.
	second := url.Values{"age": {"35"}}
	if resp, err = client.PostForm(srv.URL+"/form", second); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	resp.Body.Close()

	if n := countRows(t, db); n != 1 {
		t.Fatalf("expected one row after resubmission, got %d", n)
	}
	var row types.Simulation
	if err := db.First(&row, "national_id = ?", "12345678A").Error; err != nil {
		t.Fatalf("stored row: %v", err)
	}
	if row.Age != "35" {
		t.Fatalf("replacement age missing: %+v", row)
	}
	if row.Income != "" || row.CreditScore != "" {
		t.Fatalf("fields from the first submission survived: %+v", row)
	}
}

func TestConfirmationWithoutSubmission(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/confirmation", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("confirmation without submission: status %d", rec.Code)
	}
}

func TestHealthcheck(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthcheck: %d %q", rec.Code, rec.Body.String())
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(raw)
}

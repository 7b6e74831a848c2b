package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monacap/trading-backend/internal/config"
	"github.com/monacap/trading-backend/internal/db"
	"github.com/monacap/trading-backend/internal/oauth"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "admin-test-pass"
)

// newTestRouter builds a router backed by a fresh migrated and seeded
// SQLite database.
func newTestRouter(t *testing.T, oauthEndpoint string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + filepath.Join(t.TempDir(), "api-test.db")
	conn, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	adminCfg := config.AdminSeedConfig{Email: testAdminEmail, Password: testAdminPassword}
	if errSeed := db.Seed(conn, adminCfg); errSeed != nil {
		t.Fatalf("seed: %v", errSeed)
	}

	sessionCfg := config.SessionConfig{Expiry: 7 * 24 * time.Hour}
	r := NewRouter(conn, sessionCfg, oauth.NewClient(oauthEndpoint))
	return r, conn
}

// doJSON performs a request with an optional JSON body and extra headers.
func doJSON(t *testing.T, r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody parses a JSON response body into a generic map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if errDecode := json.Unmarshal(w.Body.Bytes(), &result); errDecode != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), errDecode)
	}
	return result
}

// bearer builds an Authorization header map for a session token.
func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// registerUser registers a fresh account and returns its session token
// and user_id.
func registerUser(t *testing.T, r *gin.Engine, email string) (token, userID string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"full_name":"Test User","email":"`+email+`","password":"pass1234"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d (%s)", email, w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	token, _ = body["token"].(string)
	user, _ := body["user"].(map[string]any)
	userID, _ = user["user_id"].(string)
	if token == "" || userID == "" {
		t.Fatalf("register %s: missing token or user_id in %v", email, body)
	}
	return token, userID
}

// loginAdmin logs in the seeded admin and returns its session token.
func loginAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"`+testAdminEmail+`","password":"`+testAdminPassword+`"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin login: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("admin login: missing token in %v", body)
	}
	return token
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t, "")

	w := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", body["status"])
	}
}

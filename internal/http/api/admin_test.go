package api

import (
	"net/http"
	"testing"

	"github.com/monacap/trading-backend/internal/models"
)

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	r, _ := newTestRouter(t, "")

	userToken, _ := registerUser(t, r, "plain@example.com")

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/transactions"},
		{http.MethodGet, "/api/admin/stats"},
	} {
		w := doJSON(t, r, route.method, route.path, "", bearer(userToken))
		if w.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403 for non-admin, got %d", route.method, route.path, w.Code)
		}
	}
}

func TestUserListAndSearch(t *testing.T) {
	r, _ := newTestRouter(t, "")

	registerUser(t, r, "findme@example.com")
	registerUser(t, r, "other@example.com")
	adminToken := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/users", "", bearer(adminToken))
	if w.Code != http.StatusOK {
		t.Fatalf("list users: expected 200, got %d", w.Code)
	}
	users, _ := decodeBody(t, w)["users"].([]any)
	if len(users) != 3 {
		t.Fatalf("expected 3 users (2 registered + admin), got %d", len(users))
	}

	w = doJSON(t, r, http.MethodGet, "/api/users?search=FINDME", "", bearer(adminToken))
	if w.Code != http.StatusOK {
		t.Fatalf("search users: expected 200, got %d", w.Code)
	}
	users, _ = decodeBody(t, w)["users"].([]any)
	if len(users) != 1 {
		t.Fatalf("expected 1 search hit, got %d", len(users))
	}
	hit, _ := users[0].(map[string]any)
	if hit["email"] != "findme@example.com" {
		t.Fatalf("expected findme@example.com, got %v", hit["email"])
	}
}

func TestUserUpdate(t *testing.T) {
	r, _ := newTestRouter(t, "")

	userToken, userID := registerUser(t, r, "target@example.com")
	adminToken := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/users/"+userID,
		`{"balance":2500,"status":"inactive"}`, bearer(adminToken))
	if w.Code != http.StatusOK {
		t.Fatalf("update user: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", "", bearer(userToken))
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", w.Code)
	}
	user, _ := decodeBody(t, w)["user"].(map[string]any)
	if user["balance"].(float64) != 2500 {
		t.Fatalf("expected balance 2500, got %v", user["balance"])
	}
	if user["status"] != models.UserStatusInactive {
		t.Fatalf("expected inactive status, got %v", user["status"])
	}

	w = doJSON(t, r, http.MethodPut, "/api/users/"+userID, `{"status":"frozen"}`, bearer(adminToken))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/users/"+userID, `{"balance":-5}`, bearer(adminToken))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative balance, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/users/user_missing000", `{"balance":10}`, bearer(adminToken))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", w.Code)
	}
}

func TestUserDeleteCascades(t *testing.T) {
	r, conn := newTestRouter(t, "")

	userToken, userID := registerUser(t, r, "gone@example.com")
	adminToken := loginAdmin(t, r)

	// Give the user a balance and some activity to cascade.
	w := doJSON(t, r, http.MethodPut, "/api/users/"+userID, `{"balance":1000}`, bearer(adminToken))
	if w.Code != http.StatusOK {
		t.Fatalf("fund user: expected 200, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/transactions",
		`{"type":"deposit","amount":100,"method":"bitcoin"}`, bearer(userToken))
	if w.Code != http.StatusCreated {
		t.Fatalf("create transaction: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/users/"+userID, "", bearer(adminToken))
	if w.Code != http.StatusOK {
		t.Fatalf("delete user: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", "", bearer(userToken))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after user deletion, got %d", w.Code)
	}

	var sessions, transactions int64
	if errCount := conn.Model(&models.UserSession{}).Where("user_id = ?", userID).Count(&sessions).Error; errCount != nil {
		t.Fatalf("count sessions: %v", errCount)
	}
	if errCount := conn.Model(&models.Transaction{}).Where("user_id = ?", userID).Count(&transactions).Error; errCount != nil {
		t.Fatalf("count transactions: %v", errCount)
	}
	if sessions != 0 || transactions != 0 {
		t.Fatalf("expected cascade to remove sessions and transactions, got %d/%d", sessions, transactions)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/users/"+userID, "", bearer(adminToken))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for already deleted user, got %d", w.Code)
	}
}

func TestAdminStats(t *testing.T) {
	r, _ := newTestRouter(t, "")

	userToken, userID := registerUser(t, r, "counted@example.com")
	adminToken := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/users/"+userID, `{"balance":750}`, bearer(adminToken))
	if w.Code != http.StatusOK {
		t.Fatalf("fund user: expected 200, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/transactions",
		`{"type":"deposit","amount":50,"method":"paypal"}`, bearer(userToken))
	if w.Code != http.StatusCreated {
		t.Fatalf("create transaction: expected 201, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/admin/stats", "", bearer(adminToken))
	if w.Code != http.StatusOK {
		t.Fatalf("admin stats: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	stats, _ := decodeBody(t, w)["stats"].(map[string]any)
	if stats["total_users"].(float64) != 1 {
		t.Fatalf("expected total_users=1 (admins excluded), got %v", stats["total_users"])
	}
	if stats["total_traders"].(float64) != 4 {
		t.Fatalf("expected 4 seeded traders, got %v", stats["total_traders"])
	}
	if stats["total_plans"].(float64) != 3 {
		t.Fatalf("expected 3 seeded plans, got %v", stats["total_plans"])
	}
	if stats["pending_transactions"].(float64) != 1 {
		t.Fatalf("expected 1 pending transaction, got %v", stats["pending_transactions"])
	}
	if stats["total_platform_balance"].(float64) != 750 {
		t.Fatalf("expected platform balance 750, got %v", stats["total_platform_balance"])
	}
}

package jobs

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/monacap/trading-backend/internal/db"
	"github.com/monacap/trading-backend/internal/models"
	"github.com/monacap/trading-backend/internal/security"
)

func TestSweep_RemovesOnlyExpiredSessions(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "sweeper-test.db")
	conn, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	now := time.Now().UTC()
	sessions := []models.UserSession{
		{SessionToken: security.GenerateSessionToken(), UserID: "user_a", ExpiresAt: now.Add(-time.Hour), CreatedAt: now.Add(-8 * 24 * time.Hour)},
		{SessionToken: security.GenerateSessionToken(), UserID: "user_b", ExpiresAt: now.Add(-time.Minute), CreatedAt: now.Add(-7 * 24 * time.Hour)},
		{SessionToken: security.GenerateSessionToken(), UserID: "user_c", ExpiresAt: now.Add(time.Hour), CreatedAt: now},
	}
	if errCreate := conn.Create(&sessions).Error; errCreate != nil {
		t.Fatalf("create sessions: %v", errCreate)
	}

	sweeper := NewSessionSweeper(conn)
	removed, errSweep := sweeper.Sweep()
	if errSweep != nil {
		t.Fatalf("sweep: %v", errSweep)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed sessions, got %d", removed)
	}

	var remaining []models.UserSession
	if errFind := conn.Find(&remaining).Error; errFind != nil {
		t.Fatalf("find sessions: %v", errFind)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining session, got %d", len(remaining))
	}
	if remaining[0].UserID != "user_c" {
		t.Fatalf("expected live session to survive, got user %q", remaining[0].UserID)
	}
}

func TestSweep_EmptyTable(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "sweeper-test.db")
	conn, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	removed, errSweep := NewSessionSweeper(conn).Sweep()
	if errSweep != nil {
		t.Fatalf("sweep: %v", errSweep)
	}
	if removed != 0 {
		t.Fatalf("expected no removed sessions, got %d", removed)
	}
}

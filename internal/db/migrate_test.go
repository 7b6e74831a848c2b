package db

import (
	"path/filepath"
	"testing"

	"github.com/monacap/trading-backend/internal/config"
	"github.com/monacap/trading-backend/internal/models"
	"github.com/monacap/trading-backend/internal/security"
)

func TestSeed_Idempotent(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "monacap-test.db")
	conn, err := Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	adminCfg := config.AdminSeedConfig{Email: "admin@example.com", Password: "change-me"}
	if errSeed := Seed(conn, adminCfg); errSeed != nil {
		t.Fatalf("first seed: %v", errSeed)
	}
	if errSeed := Seed(conn, adminCfg); errSeed != nil {
		t.Fatalf("second seed: %v", errSeed)
	}

	var admins int64
	if errCount := conn.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error; errCount != nil {
		t.Fatalf("count admins: %v", errCount)
	}
	if admins != 1 {
		t.Fatalf("expected 1 admin, got %d", admins)
	}

	var traders int64
	if errCount := conn.Model(&models.Trader{}).Count(&traders).Error; errCount != nil {
		t.Fatalf("count traders: %v", errCount)
	}
	if traders != 4 {
		t.Fatalf("expected 4 seeded traders, got %d", traders)
	}

	var plans int64
	if errCount := conn.Model(&models.Plan{}).Count(&plans).Error; errCount != nil {
		t.Fatalf("count plans: %v", errCount)
	}
	if plans != 3 {
		t.Fatalf("expected 3 seeded plans, got %d", plans)
	}
}

func TestSeed_AdminPasswordVerifies(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "monacap-test.db")
	conn, err := Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	adminCfg := config.AdminSeedConfig{Email: "root@example.com", Password: "topsecret"}
	if errSeed := Seed(conn, adminCfg); errSeed != nil {
		t.Fatalf("seed: %v", errSeed)
	}

	var admin models.User
	if errFind := conn.Where("email = ?", "root@example.com").First(&admin).Error; errFind != nil {
		t.Fatalf("find admin: %v", errFind)
	}
	if admin.Role != models.RoleAdmin {
		t.Fatalf("expected admin role, got %q", admin.Role)
	}
	if !security.CheckPassword(admin.Password, "topsecret") {
		t.Fatalf("expected seeded password to verify")
	}
}

func TestOpen_RejectsEmptyDSN(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}

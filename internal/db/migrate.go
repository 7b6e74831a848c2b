package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/monacap/trading-backend/internal/config"
	"github.com/monacap/trading-backend/internal/models"
	"github.com/monacap/trading-backend/internal/security"
)

// Migrate runs database migrations for all application models.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	if errAutoMigrate := conn.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.Trader{},
		&models.Plan{},
		&models.CopyTrade{},
		&models.Transaction{},
		&models.WalletAddress{},
	); errAutoMigrate != nil {
		return fmt.Errorf("db: migrate: %w", errAutoMigrate)
	}
	return nil
}

// Seed ensures the bootstrap admin account and default catalog data exist.
// It is idempotent and safe to run on every startup.
func Seed(conn *gorm.DB, adminCfg config.AdminSeedConfig) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	if errAdmin := ensureAdminUser(conn, adminCfg); errAdmin != nil {
		return errAdmin
	}
	if errTraders := ensureDefaultTraders(conn); errTraders != nil {
		return errTraders
	}
	if errPlans := ensureDefaultPlans(conn); errPlans != nil {
		return errPlans
	}
	return nil
}

// ensureAdminUser creates the bootstrap admin account when absent.
func ensureAdminUser(conn *gorm.DB, adminCfg config.AdminSeedConfig) error {
	var existing models.User
	errFind := conn.Where("email = ?", adminCfg.Email).First(&existing).Error
	if errFind == nil {
		return nil
	}
	if !errors.Is(errFind, gorm.ErrRecordNotFound) {
		return fmt.Errorf("db: find admin: %w", errFind)
	}

	if adminCfg.Password == config.DefaultAdminPassword {
		log.Warn("seeding admin account with the default password; set ADMIN_PASSWORD")
	}

	hash, errHash := security.HashPassword(adminCfg.Password)
	if errHash != nil {
		return fmt.Errorf("db: hash admin password: %w", errHash)
	}

	admin := models.User{
		UserID:    security.GenerateUserID(),
		Email:     adminCfg.Email,
		FullName:  "Admin User",
		Password:  hash,
		Role:      models.RoleAdmin,
		Balance:   0,
		Status:    models.UserStatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if errCreate := conn.Create(&admin).Error; errCreate != nil {
		return fmt.Errorf("db: create admin: %w", errCreate)
	}
	log.WithField("email", admin.Email).Info("bootstrap admin account created")
	return nil
}

// seedTrader describes one default trader entry.
type seedTrader struct {
	name      string
	image     string
	profit    string
	followers int
	risk      string
	trades    int
	winRate   string
}

// ensureDefaultTraders seeds the trader catalog when the table is empty.
func ensureDefaultTraders(conn *gorm.DB) error {
	var count int64
	if errCount := conn.Model(&models.Trader{}).Count(&count).Error; errCount != nil {
		return fmt.Errorf("db: count traders: %w", errCount)
	}
	if count > 0 {
		return nil
	}

	defaults := []seedTrader{
		{"John Martinez", "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200", "+58.24%", 1250, models.RiskMedium, 342, "76.71%"},
		{"Sarah Chen", "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200", "+92.15%", 2100, models.RiskHigh, 521, "82.34%"},
		{"Michael Johnson", "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200", "+45.67%", 890, models.RiskLow, 289, "71.23%"},
		{"Emma Williams", "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200", "+73.89%", 1780, models.RiskMedium, 456, "79.45%"},
	}

	now := time.Now().UTC()
	traders := make([]models.Trader, 0, len(defaults))
	for _, d := range defaults {
		traders = append(traders, models.Trader{
			TraderID:  security.GenerateID("trader"),
			Name:      d.name,
			Image:     d.image,
			Profit:    d.profit,
			Followers: d.followers,
			Risk:      d.risk,
			Trades:    d.trades,
			WinRate:   d.winRate,
			IsActive:  true,
			CreatedAt: now,
		})
	}
	if errCreate := conn.Create(&traders).Error; errCreate != nil {
		return fmt.Errorf("db: seed traders: %w", errCreate)
	}
	log.WithField("count", len(traders)).Info("default traders seeded")
	return nil
}

// seedPlan describes one default subscription plan.
type seedPlan struct {
	name     string
	price    float64
	duration string
	features []string
	popular  bool
}

// ensureDefaultPlans seeds the plan catalog when the table is empty.
func ensureDefaultPlans(conn *gorm.DB) error {
	var count int64
	if errCount := conn.Model(&models.Plan{}).Count(&count).Error; errCount != nil {
		return fmt.Errorf("db: count plans: %w", errCount)
	}
	if count > 0 {
		return nil
	}

	defaults := []seedPlan{
		{
			name: "Starter", price: 500, duration: "30 days", popular: false,
			features: []string{
				"Copy up to 2 traders",
				"Basic risk management",
				"Email support",
				"Market analysis reports",
			},
		},
		{
			name: "Professional", price: 2000, duration: "30 days", popular: true,
			features: []string{
				"Copy up to 5 traders",
				"Advanced risk management",
				"Priority support",
				"Daily market analysis",
				"Trading signals",
			},
		},
		{
			name: "Elite", price: 5000, duration: "30 days", popular: false,
			features: []string{
				"Copy unlimited traders",
				"Custom risk management",
				"24/7 VIP support",
				"Personal account manager",
				"Premium trading signals",
				"Exclusive webinars",
			},
		},
	}

	now := time.Now().UTC()
	plans := make([]models.Plan, 0, len(defaults))
	for _, d := range defaults {
		features, errMarshal := json.Marshal(d.features)
		if errMarshal != nil {
			return fmt.Errorf("db: marshal plan features: %w", errMarshal)
		}
		plans = append(plans, models.Plan{
			PlanID:    security.GenerateID("plan"),
			Name:      d.name,
			Price:     d.price,
			Duration:  d.duration,
			Features:  datatypes.JSON(features),
			Popular:   d.popular,
			IsActive:  true,
			CreatedAt: now,
		})
	}
	if errCreate := conn.Create(&plans).Error; errCreate != nil {
		return fmt.Errorf("db: seed plans: %w", errCreate)
	}
	log.WithField("count", len(plans)).Info("default plans seeded")
	return nil
}

package main

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kanbanlive/internal/auth"
	"kanbanlive/internal/config"
	"kanbanlive/internal/model"
)

// Canonical seed set. The board starts with three fixed columns and a
// handful of test accounts.
var seedColumns = []model.Column{
	{Title: "待辦中", Position: 1},
	{Title: "進行中", Position: 2},
	{Title: "已完成", Position: 3},
}

var seedUsers = []struct {
	Username string
	Password string
	FullName string
}{
	{"admin", "admin123", "Admin"},
	{"stephen", "123", "Stephen"},
	{"bernie", "123", "Bernie"},
	{"jenny", "123", "Jenny"},
}

// Seeding is best-effort: a failed row is logged and the rest of the
// seed still runs.
func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ failed to connect to DB: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Column{}, &model.Task{}); err != nil {
		log.Fatalf("❌ failed to migrate schema: %v", err)
	}

	var columnCount int64
	if err := db.Model(&model.Column{}).Count(&columnCount).Error; err != nil {
		log.Fatalf("❌ failed to count columns: %v", err)
	}
	if columnCount == 0 {
		if err := db.Create(&seedColumns).Error; err != nil {
			log.Printf("⚠️  failed to seed columns: %v", err)
		} else {
			log.Println("✅ Seeded board columns")
		}
	}

	for _, su := range seedUsers {
		var existing int64
		if err := db.Model(&model.User{}).Where("username = ?", su.Username).Count(&existing).Error; err != nil {
			log.Printf("⚠️  failed to look up user %s: %v", su.Username, err)
			continue
		}
		if existing > 0 {
			continue
		}
		credential, err := auth.Credential(cfg.AuthScheme, su.Password)
		if err != nil {
			log.Printf("⚠️  failed to prepare credential for %s: %v", su.Username, err)
			continue
		}
		user := model.User{
			Username:       su.Username,
			FullName:       su.FullName,
			HashedPassword: credential,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("⚠️  failed to seed user %s: %v", su.Username, err)
			continue
		}
		log.Printf("✅ User %s created", su.Username)
	}
}

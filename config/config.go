package config

import (
	"os"

	"menuzy-api/logger"
	"menuzy-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs access tokens — read from env or fallback for local dev.
var JWTSecret = []byte(loadEnv("JWT_SECRET", "menuzy_super_secret_2024"))

// loadEnv pulls in .env first so the secret can live there during local
// development; real environment variables win over the file.
func loadEnv(key, fallback string) string {
	_ = godotenv.Load()
	return getEnv(key, fallback)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB connects to postgres when DATABASE_URL is set, otherwise to a
// local sqlite file, then migrates the schema and seeds defaults.
func InitDB() {
	log := logger.Get()

	var dialector gorm.Dialector
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(getEnv("SQLITE_PATH", "menuzy.db"))
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	log.Info("database connected and migrated")
}

// Migrate creates the schema and seeds the default categories. Safe to
// run repeatedly: existing tables and seed rows are left untouched.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Restaurant{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Review{},
		&models.Favorite{},
	); err != nil {
		return err
	}
	return seedCategories(db)
}

var defaultCategories = []models.Category{
	{Name: "Fast Food", Description: "Quick service restaurants", Icon: "🍔"},
	{Name: "Fine Dining", Description: "Upscale dining experience", Icon: "🍽️"},
	{Name: "Cafe", Description: "Coffee shops and light meals", Icon: "☕"},
	{Name: "Pizza", Description: "Pizza restaurants", Icon: "🍕"},
	{Name: "Asian", Description: "Asian cuisine", Icon: "🥢"},
	{Name: "Italian", Description: "Italian cuisine", Icon: "🍝"},
	{Name: "Mexican", Description: "Mexican cuisine", Icon: "🌮"},
	{Name: "Indian", Description: "Indian cuisine", Icon: "🍛"},
	{Name: "Desserts", Description: "Dessert and sweet shops", Icon: "🍰"},
	{Name: "Healthy", Description: "Health-focused restaurants", Icon: "🥗"},
}

func seedCategories(db *gorm.DB) error {
	for _, c := range defaultCategories {
		cat := c
		cat.IsActive = true
		if err := db.Where("name = ?", cat.Name).FirstOrCreate(&cat).Error; err != nil {
			return err
		}
	}
	return nil
}

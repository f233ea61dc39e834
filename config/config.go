package config

import (
	"log"

	"restaurant-orders-api/models"

	"github.com/caarlos0/env/v10"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CheckoutScope selects whether a payment settles everything pending or
// only the rows snapshotted into the checkout intent.
const (
	ScopeAll      = "all"
	ScopeItemized = "itemized"
)

type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	GinMode       string `env:"GIN_MODE"`
	DBPath        string `env:"DB_PATH" envDefault:"restaurant.db"`
	JWTSecretKey  string `env:"JWT_SECRET" envDefault:"restaurant_orders_super_secret_2025"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CheckoutScope string `env:"CHECKOUT_SCOPE" envDefault:"all"`
}

var C Config

var DB *gorm.DB

// JWTSecret used to sign tokens, populated by Load
var JWTSecret []byte

// Load reads .env (when present) and the environment into C.
func Load() {
	_ = godotenv.Load()
	if err := env.Parse(&C); err != nil {
		log.Fatal("Failed to parse config from environment:", err)
	}
	if C.CheckoutScope != ScopeAll && C.CheckoutScope != ScopeItemized {
		log.Fatalf("Invalid CHECKOUT_SCOPE %q: must be %q or %q", C.CheckoutScope, ScopeAll, ScopeItemized)
	}
	JWTSecret = []byte(C.JWTSecretKey)
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(C.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}

// Migrate auto-migrates every model. Shared with the test setup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.GalleryImage{},
		&models.Order{},
		&models.GalleryOrder{},
		&models.CheckoutIntent{},
		&models.Payment{},
		&models.Feedback{},
		&models.ContactMessage{},
	)
}

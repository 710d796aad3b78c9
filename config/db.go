package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-reservation-backend/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func price(v string) decimal.NullDecimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		log.Fatalf("Error parsing seed price %q: %v", v, err)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func amenities(names ...string) datatypes.JSON {
	raw, err := json.Marshal(names)
	if err != nil {
		log.Fatalf("Error encoding seed amenities: %v", err)
	}
	return datatypes.JSON(raw)
}

// SeedDatabase inserts a default admin and a small catalog so a fresh
// install is usable immediately.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				FullName:     "Admin User",
				Email:        "admin@hotel.local",
				PasswordHash: string(hash),
				Role:         models.RoleAdmin,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", RoomType: "Standard", PricePerNight: price("100.00"), Available: true, Amenities: amenities("wifi", "tv")},
			{RoomNumber: "102", RoomType: "Standard", PricePerNight: price("100.00"), Available: true, Amenities: amenities("wifi", "tv")},
			{RoomNumber: "201", RoomType: "Superior", PricePerNight: price("150.00"), Available: true, Amenities: amenities("wifi", "tv", "minibar")},
			{RoomNumber: "301", RoomType: "Deluxe", PricePerNight: price("220.00"), Available: true, Amenities: amenities("wifi", "tv", "minibar", "balcony")},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	var foodCount int64
	DB.Model(&models.FoodItem{}).Count(&foodCount)
	if foodCount == 0 {
		items := []models.FoodItem{
			{Name: "Pad Thai", Cuisine: "Thai", Price: price("12.50")},
			{Name: "Margherita Pizza", Cuisine: "Italian", Price: price("15.00")},
			{Name: "Club Sandwich", Cuisine: "International", Price: price("9.00")},
		}
		if err := DB.Create(&items).Error; err != nil {
			log.Printf("warning: failed to seed food items: %v", err)
		} else {
			log.Println("Food items seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order; the booking join tables are
	// created from the many2many tags.
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.FoodItem{},
		&models.Booking{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-backoffice/models"

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
	dbName := envOrDefault("DB_NAME", "hotel_backoffice")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// SeedDatabase inserts a development tenant with a handful of rooms so the
// API is usable right after the first start. Every block is idempotent.
func SeedDatabase() {
	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount > 0 {
		return
	}

	hotel := models.Hotel{
		Name:    "Harbor View Hotel",
		Email:   "frontdesk@harborview.local",
		Phone:   "+1-555-0100",
		Address: "1 Harbor Street",
	}
	if err := DB.Create(&hotel).Error; err != nil {
		log.Printf("warning: failed to seed hotel: %v", err)
		return
	}

	roomTypes := []models.RoomType{
		{HotelID: hotel.ID, Name: "Standard", Description: "Standard Room"},
		{HotelID: hotel.ID, Name: "Superior", Description: "Superior Room"},
		{HotelID: hotel.ID, Name: "Deluxe", Description: "Deluxe Room"},
	}
	if err := DB.Create(&roomTypes).Error; err != nil {
		log.Printf("warning: failed to seed room types: %v", err)
	}

	rooms := []models.Room{
		{HotelID: hotel.ID, RoomNumber: "101", RoomType: "Standard", Price: 80, Capacity: 2, Description: "Standard double", Status: models.RoomStatusAvailable},
		{HotelID: hotel.ID, RoomNumber: "102", RoomType: "Standard", Price: 80, Capacity: 2, Description: "Standard twin", Status: models.RoomStatusAvailable},
		{HotelID: hotel.ID, RoomNumber: "201", RoomType: "Deluxe", Price: 140, Capacity: 4, Description: "Deluxe harbor side", Status: models.RoomStatusAvailable},
	}
	if err := DB.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
	}

	log.Println("Development hotel seeded")
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

	if err := MigrateModels(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// MigrateModels runs AutoMigrate in parent->child order. Shared with the test
// suite, which runs it against an in-memory database.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Hotel{},
		&models.RoomType{},
		&models.Amenity{},
		&models.Room{},
		&models.Booking{},
	)
}

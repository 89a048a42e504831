package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"confku_backend/internals/configs"
	conferenceModel "confku_backend/internals/features/conference/model"
	userModel "confku_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Koneksi ke PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=confku",
		configs.GetEnv("DB_USER"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST"),
		configs.GetEnv("DB_PORT"),
		configs.GetEnv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk semua tabel; urutan mengikuti
// arah FK supaya constraint terbentuk sekali jalan.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&conferenceModel.ConferenceScheduleModel{},
		&conferenceModel.ScheduleModel{},
		&conferenceModel.TrackModel{},
		&conferenceModel.RoomModel{},
		&conferenceModel.TrackSessionModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] Migrasi gagal: %v", err)
	}
	log.Println("[INFO] Migrasi selesai.")
}

package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gymku_backend/internals/configs"
	academyModel "gymku_backend/internals/features/academies/academy/model"
	classModel "gymku_backend/internals/features/academies/classes/model"
	recordModel "gymku_backend/internals/features/attendance/records/model"
	sessionModel "gymku_backend/internals/features/attendance/sessions/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// Kalau pakai PgBouncer, arahkan host/port ke PgBouncer dan biarkan PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=gymku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Migrate menjalankan AutoMigrate semua model + index unik yang jadi
// sumber kebenaran idempotensi (bukan cek read-then-write di aplikasi).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&academyModel.AcademyModel{},
		&classModel.ClassModel{},
		&classModel.StudentModel{},
		&sessionModel.ClassSessionModel{},
		&recordModel.AttendanceRecordModel{},
	); err != nil {
		return err
	}

	// Kunci unik check-in: satu record per (academy, class, student, hari).
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_attendance_records_day
		ON attendance_records (
			attendance_record_academy_id,
			attendance_record_class_id,
			attendance_record_student_id,
			attendance_record_day
		)
	`).Error; err != nil {
		return err
	}

	// Maksimal satu sesi aktif per (academy, class) — partial unique index.
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_class_sessions_active
		ON class_sessions (class_session_academy_id, class_session_class_id)
		WHERE class_session_status = 'active'
	`).Error
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

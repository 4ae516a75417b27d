// Package testdb menyediakan DB sqlite untuk test service tanpa server
// Postgres. Skema + index unik dibuat lewat database.Migrate yang sama
// dengan produksi, jadi constraint yang diuji persis constraint runtime.
package testdb

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "gymku_backend/internals/databases"
	academyModel "gymku_backend/internals/features/academies/academy/model"
	classModel "gymku_backend/internals/features/academies/classes/model"
)

func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "gymku_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// satu koneksi: hindari SQLITE_BUSY saat test concurrent
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

/* =========================
   Seed helpers
========================= */

func SeedAcademy(t *testing.T, db *gorm.DB, name string) academyModel.AcademyModel {
	t.Helper()
	m := academyModel.AcademyModel{
		AcademyName:     name,
		AcademySlug:     name + "-" + uuid.NewString()[:8],
		AcademyTimezone: "Asia/Jakarta",
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed academy: %v", err)
	}
	return m
}

func SeedClass(t *testing.T, db *gorm.DB, academyID uuid.UUID, name string, instructorID *uuid.UUID, instructorContact string) classModel.ClassModel {
	t.Helper()
	m := classModel.ClassModel{
		ClassAcademyId:         academyID,
		ClassName:              name,
		ClassCapacity:          30,
		ClassInstructorId:      instructorID,
		ClassInstructorContact: instructorContact,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed class: %v", err)
	}
	return m
}

func SeedStudent(t *testing.T, db *gorm.DB, academyID uuid.UUID, name, contact string) classModel.StudentModel {
	t.Helper()
	m := classModel.StudentModel{
		StudentAcademyId: academyID,
		StudentName:      name,
		StudentContact:   contact,
		StudentActive:    true,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return m
}

func SeedStudents(t *testing.T, db *gorm.DB, academyID uuid.UUID, n int) []classModel.StudentModel {
	t.Helper()
	out := make([]classModel.StudentModel, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, SeedStudent(t, db, academyID, "Siswa "+uuid.NewString()[:8], ""))
	}
	return out
}

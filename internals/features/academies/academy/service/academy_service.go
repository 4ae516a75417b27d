package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"gymku_backend/internals/configs"
	"gymku_backend/internals/features/academies/academy/model"
	helperAuth "gymku_backend/internals/helpers/auth"
)

type AcademyService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *AcademyService { return &AcademyService{DB: db} }

func (s *AcademyService) GetByID(scope helperAuth.TenantScope) (*model.AcademyModel, error) {
	var m model.AcademyModel
	err := s.DB.
		Where("academy_id = ?", scope.AcademyID).
		Take(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Location mengembalikan *time.Location academy untuk normalisasi hari lokal.
// Academy yang belum punya baris metadata jatuh ke DEFAULT_TIMEZONE.
func (s *AcademyService) Location(scope helperAuth.TenantScope) *time.Location {
	tz := configs.DefaultTimezone

	var m model.AcademyModel
	err := s.DB.
		Select("academy_timezone").
		Where("academy_id = ?", scope.AcademyID).
		Take(&m).Error
	if err == nil && m.AcademyTimezone != "" {
		tz = m.AcademyTimezone
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		// DB bermasalah: tetap pakai default, jangan gagalkan check-in
		tz = configs.DefaultTimezone
	}

	if loc, lerr := time.LoadLocation(tz); lerr == nil {
		return loc
	}
	return time.UTC
}

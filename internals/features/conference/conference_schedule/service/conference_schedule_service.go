package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"confku_backend/internals/features/conference/conference_schedule/dto"
	"confku_backend/internals/features/conference/guard"
	"confku_backend/internals/features/conference/model"
	helper "confku_backend/internals/helpers"
	"confku_backend/internals/helpers/querykit"
)

const yearTakenMessage = "Conference Schedule already exists for the given year."

type ConferenceScheduleService struct {
	db *gorm.DB
}

func NewConferenceScheduleService(db *gorm.DB) *ConferenceScheduleService {
	return &ConferenceScheduleService{db: db}
}

func (s *ConferenceScheduleService) GetAll(q querykit.ListQuery) ([]model.ConferenceScheduleModel, *querykit.Meta, error) {
	opts := querykit.Build(dto.QueryConfig, q)

	var data []model.ConferenceScheduleModel
	if err := opts.Apply(s.db.Model(&model.ConferenceScheduleModel{})).Find(&data).Error; err != nil {
		return nil, nil, err
	}

	// count berjalan di bawah where-clause yang sama, tanpa include
	var count int64
	if err := opts.ApplyForCount(s.db.Model(&model.ConferenceScheduleModel{})).Count(&count).Error; err != nil {
		return nil, nil, err
	}

	return data, querykit.BuildMeta(count, q), nil
}

func (s *ConferenceScheduleService) GetByID(id uuid.UUID) (*model.ConferenceScheduleModel, error) {
	var data model.ConferenceScheduleModel
	err := s.db.Preload("Schedules.Rooms.Track").First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Conference Schedule not found.")
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// GetForUserView: tampilan publik per (year, type).
func (s *ConferenceScheduleService) GetForUserView(year, confType string) (*model.ConferenceScheduleModel, error) {
	var data model.ConferenceScheduleModel
	err := s.db.Preload("Schedules.Rooms.Track").
		First(&data, "year = ? AND type = ?", year, confType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Conference Schedule not found.")
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// GetActive: edisi aktif dari satu tipe conference.
func (s *ConferenceScheduleService) GetActive(confType string) (*model.ConferenceScheduleModel, error) {
	var data model.ConferenceScheduleModel
	err := s.db.Preload("Schedules.Rooms.Track").
		First(&data, "type = ? AND is_active = ?", confType, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Conference Schedule not found.")
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *ConferenceScheduleService) Create(req dto.CreateConferenceScheduleRequest, actor guard.Actor) (*model.ConferenceScheduleModel, error) {
	if err := guard.EnsureCanManageType(actor.Role, req.Type, "create"); err != nil {
		return nil, err
	}

	var exists int64
	if err := yearTypeCollisions(s.db, req.Year, req.Type, uuid.Nil).
		Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists > 0 {
		return nil, helper.NewFieldError(yearTakenMessage, "year")
	}

	data := req.ToModel()

	var err error
	if data.IsActive {
		// hanya satu edisi aktif per tipe: nonaktifkan yang lain di
		// transaksi yang sama dengan create (all-or-nothing)
		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := deactivateOthers(tx, data.Type, uuid.Nil).Error; err != nil {
				return err
			}
			return tx.Create(&data).Error
		})
	} else {
		err = s.db.Create(&data).Error
	}
	if err != nil {
		if helper.IsUniqueViolation(err, "uq_conference_schedules_year_type") {
			return nil, helper.NewFieldError(yearTakenMessage, "year")
		}
		return nil, err
	}

	return &data, nil
}

func (s *ConferenceScheduleService) Update(id uuid.UUID, req dto.UpdateConferenceScheduleRequest, actor guard.Actor) (*model.ConferenceScheduleModel, error) {
	var existing model.ConferenceScheduleModel
	err := s.db.First(&existing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Conference Schedule not found.")
	}
	if err != nil {
		return nil, err
	}

	targetType := existing.Type
	if req.Type != nil {
		targetType = *req.Type
	}
	targetYear := existing.Year
	if req.Year != nil {
		targetYear = *req.Year
	}

	if err := guard.EnsureCanManageType(actor.Role, existing.Type, "update"); err != nil {
		return nil, err
	}
	if err := guard.EnsureCanManageType(actor.Role, targetType, "update"); err != nil {
		return nil, err
	}

	var collisions int64
	if err := yearTypeCollisions(s.db, targetYear, targetType, id).
		Count(&collisions).Error; err != nil {
		return nil, err
	}
	if collisions > 0 {
		return nil, helper.NewFieldError(yearTakenMessage, "year")
	}

	updates := req.ToUpdates()

	if req.IsActive != nil && *req.IsActive {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := deactivateOthers(tx, targetType, id).Error; err != nil {
				return err
			}
			return tx.Model(&existing).Updates(updates).Error
		})
	} else {
		err = s.db.Model(&existing).Updates(updates).Error
	}
	if err != nil {
		if helper.IsUniqueViolation(err, "uq_conference_schedules_year_type") {
			return nil, helper.NewFieldError(yearTakenMessage, "year")
		}
		return nil, err
	}

	var updated model.ConferenceScheduleModel
	if err := s.db.First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// yearTypeCollisions: query edisi lain dengan (year, type) yang sama.
func yearTypeCollisions(db *gorm.DB, year, confType string, excludeID uuid.UUID) *gorm.DB {
	q := db.Model(&model.ConferenceScheduleModel{}).
		Where("year = ? AND type = ?", year, confType)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

// deactivateOthers: matikan edisi aktif lain bertipe sama di dalam
// transaksi yang sedang berjalan.
func deactivateOthers(tx *gorm.DB, confType string, excludeID uuid.UUID) *gorm.DB {
	q := tx.Model(&model.ConferenceScheduleModel{}).
		Where("type = ? AND is_active = ?", confType, true)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	return q.Update("is_active", false)
}

// SoftDelete: stamp deleted_at. Pemanggilan kedua pada record yang
// sudah terhapus jatuh ke NotFound (default scope menyembunyikannya).
func (s *ConferenceScheduleService) SoftDelete(id uuid.UUID, actor guard.Actor) (*model.ConferenceScheduleModel, error) {
	var data model.ConferenceScheduleModel
	err := s.db.First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Conference Schedule not found.")
	}
	if err != nil {
		return nil, err
	}

	if err := guard.EnsureCanManageType(actor.Role, data.Type, "delete"); err != nil {
		return nil, err
	}

	if err := s.db.Delete(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

// HardDelete: hanya boleh setelah soft delete.
func (s *ConferenceScheduleService) HardDelete(id uuid.UUID, actor guard.Actor) (*model.ConferenceScheduleModel, error) {
	var data model.ConferenceScheduleModel
	err := s.db.Unscoped().First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Conference Schedule not found.")
	}
	if err != nil {
		return nil, err
	}

	if err := guard.EnsureCanManageType(actor.Role, data.Type, "delete"); err != nil {
		return nil, err
	}

	if !data.DeletedAt.Valid {
		return nil, helper.BadRequest("Conference Schedule must be soft deleted first before hard delete.")
	}

	if err := s.db.Unscoped().Delete(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

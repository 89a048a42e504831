package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"confku_backend/internals/features/conference/guard"
	"confku_backend/internals/features/conference/model"
	"confku_backend/internals/features/conference/schedule/dto"
	helper "confku_backend/internals/helpers"
	"confku_backend/internals/helpers/querykit"
)

type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

func (s *ScheduleService) GetAll(q querykit.ListQuery) ([]model.ScheduleModel, *querykit.Meta, error) {
	opts := querykit.Build(dto.QueryConfig, q)

	var data []model.ScheduleModel
	if err := opts.Apply(s.db.Model(&model.ScheduleModel{})).Find(&data).Error; err != nil {
		return nil, nil, err
	}

	var count int64
	if err := opts.ApplyForCount(s.db.Model(&model.ScheduleModel{})).Count(&count).Error; err != nil {
		return nil, nil, err
	}

	return data, querykit.BuildMeta(count, q), nil
}

func (s *ScheduleService) GetByID(id uuid.UUID) (*model.ScheduleModel, error) {
	var data model.ScheduleModel
	err := s.db.Preload("Rooms.Track.TrackSessions").First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Schedule not found.")
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *ScheduleService) Create(req dto.CreateScheduleRequest, actor guard.Actor) (*model.ScheduleModel, error) {
	confType, err := s.conferenceType(req.ConferenceScheduleID)
	if err != nil {
		return nil, err
	}
	if err := guard.EnsureCanManage(actor.Role, confType, "create", "schedule"); err != nil {
		return nil, err
	}

	data := req.ToModel()
	if err := s.db.Create(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *ScheduleService) Update(id uuid.UUID, req dto.UpdateScheduleRequest, actor guard.Actor) (*model.ScheduleModel, error) {
	var existing model.ScheduleModel
	err := s.db.First(&existing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Schedule not found.")
	}
	if err != nil {
		return nil, err
	}

	currentType, err := s.conferenceType(existing.ConferenceScheduleID)
	if err != nil {
		return nil, err
	}
	if err := guard.EnsureCanManage(actor.Role, currentType, "update", "schedule"); err != nil {
		return nil, err
	}

	// pindah conference → harus berwenang juga di conference tujuan
	if req.ConferenceScheduleID != nil && *req.ConferenceScheduleID != existing.ConferenceScheduleID {
		targetType, err := s.conferenceType(*req.ConferenceScheduleID)
		if err != nil {
			return nil, err
		}
		if err := guard.EnsureCanManage(actor.Role, targetType, "update", "schedule"); err != nil {
			return nil, err
		}
	}

	if err := s.db.Model(&existing).Updates(req.ToUpdates()).Error; err != nil {
		return nil, err
	}

	var updated model.ScheduleModel
	if err := s.db.First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ScheduleService) Delete(id uuid.UUID, actor guard.Actor) (*model.ScheduleModel, error) {
	var data model.ScheduleModel
	err := s.db.First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Schedule not found.")
	}
	if err != nil {
		return nil, err
	}

	confType, err := s.conferenceType(data.ConferenceScheduleID)
	if err != nil {
		return nil, err
	}
	if err := guard.EnsureCanManage(actor.Role, confType, "delete", "schedule"); err != nil {
		return nil, err
	}

	if err := s.db.Delete(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

// conferenceType: tipe conference pemilik; conference yang sudah
// soft-deleted dianggap tidak ada.
func (s *ScheduleService) conferenceType(conferenceID uuid.UUID) (string, error) {
	var conf model.ConferenceScheduleModel
	err := s.db.Select("id", "type").First(&conf, "id = ?", conferenceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", helper.NewFieldError("Conference schedule not found.", "conference_schedule_id")
	}
	if err != nil {
		return "", err
	}
	return conf.Type, nil
}

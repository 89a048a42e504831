package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"confku_backend/internals/features/conference/guard"
	"confku_backend/internals/features/conference/model"
	"confku_backend/internals/features/conference/track_session/dto"
	helper "confku_backend/internals/helpers"
	"confku_backend/internals/helpers/querykit"
)

type TrackSessionService struct {
	db *gorm.DB
}

func NewTrackSessionService(db *gorm.DB) *TrackSessionService {
	return &TrackSessionService{db: db}
}

func (s *TrackSessionService) GetAll(q querykit.ListQuery) ([]model.TrackSessionModel, *querykit.Meta, error) {
	opts := querykit.Build(dto.QueryConfig, q)

	var data []model.TrackSessionModel
	if err := opts.Apply(s.db.Model(&model.TrackSessionModel{})).Find(&data).Error; err != nil {
		return nil, nil, err
	}

	var count int64
	if err := opts.ApplyForCount(s.db.Model(&model.TrackSessionModel{})).Count(&count).Error; err != nil {
		return nil, nil, err
	}

	return data, querykit.BuildMeta(count, q), nil
}

func (s *TrackSessionService) GetByID(id uuid.UUID) (*model.TrackSessionModel, error) {
	var data model.TrackSessionModel
	err := s.db.Preload("Track").First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Track session not found.")
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *TrackSessionService) Create(req dto.CreateTrackSessionRequest, actor guard.Actor) (*model.TrackSessionModel, error) {
	confType, err := s.conferenceTypeByTrack(req.TrackID)
	if err != nil {
		return nil, err
	}
	if err := guard.EnsureCanManage(actor.Role, confType, "create", "track session"); err != nil {
		return nil, err
	}

	data := req.ToModel()
	if err := s.db.Create(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *TrackSessionService) Update(id uuid.UUID, req dto.UpdateTrackSessionRequest, actor guard.Actor) (*model.TrackSessionModel, error) {
	var existing model.TrackSessionModel
	err := s.db.First(&existing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Track session not found.")
	}
	if err != nil {
		return nil, err
	}

	confType, err := s.conferenceTypeByTrack(existing.TrackID)
	if err != nil {
		return nil, err
	}
	if err := guard.EnsureCanManage(actor.Role, confType, "update", "track session"); err != nil {
		return nil, err
	}

	// pindah track → track tujuan harus ada
	if req.TrackID != nil && *req.TrackID != existing.TrackID {
		if _, err := s.conferenceTypeByTrack(*req.TrackID); err != nil {
			return nil, err
		}
	}

	if err := s.db.Model(&existing).Updates(req.ToUpdates()).Error; err != nil {
		return nil, err
	}

	var updated model.TrackSessionModel
	if err := s.db.First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *TrackSessionService) Delete(id uuid.UUID, actor guard.Actor) (*model.TrackSessionModel, error) {
	var data model.TrackSessionModel
	err := s.db.First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Track session not found.")
	}
	if err != nil {
		return nil, err
	}

	confType, err := s.conferenceTypeByTrack(data.TrackID)
	if err != nil {
		return nil, err
	}
	if err := guard.EnsureCanManage(actor.Role, confType, "delete", "track session"); err != nil {
		return nil, err
	}

	if err := s.db.Delete(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

// conferenceTypeByTrack: pastikan track ada sekaligus ambil tipe
// conference pemiliknya lewat rantai Track→Room→Schedule→Conference.
func (s *TrackSessionService) conferenceTypeByTrack(trackID uuid.UUID) (string, error) {
	var count int64
	if err := s.db.Model(&model.TrackModel{}).Where("id = ?", trackID).Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return "", helper.NewFieldError("Track not found.", "track_id")
	}

	var confType string
	err := s.db.Model(&model.TrackModel{}).
		Select("conference_schedules.type").
		Joins("JOIN rooms ON rooms.track_id = tracks.id").
		Joins("JOIN schedules ON schedules.id = rooms.schedule_id").
		Joins("JOIN conference_schedules ON conference_schedules.id = schedules.conference_schedule_id").
		Where("tracks.id = ?", trackID).
		Scan(&confType).Error
	if err != nil {
		return "", err
	}
	return confType, nil
}

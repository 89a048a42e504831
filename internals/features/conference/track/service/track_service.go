package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"confku_backend/internals/features/conference/guard"
	"confku_backend/internals/features/conference/model"
	"confku_backend/internals/features/conference/track/dto"
	helper "confku_backend/internals/helpers"
	"confku_backend/internals/helpers/querykit"
)

type TrackService struct {
	db *gorm.DB
}

func NewTrackService(db *gorm.DB) *TrackService {
	return &TrackService{db: db}
}

func (s *TrackService) GetAll(q querykit.ListQuery) ([]model.TrackModel, *querykit.Meta, error) {
	opts := querykit.Build(dto.QueryConfig, q)

	var data []model.TrackModel
	if err := opts.Apply(s.db.Model(&model.TrackModel{})).Find(&data).Error; err != nil {
		return nil, nil, err
	}

	var count int64
	if err := opts.ApplyForCount(s.db.Model(&model.TrackModel{})).Count(&count).Error; err != nil {
		return nil, nil, err
	}

	return data, querykit.BuildMeta(count, q), nil
}

func (s *TrackService) GetByID(id uuid.UUID) (*model.TrackModel, error) {
	var data model.TrackModel
	err := s.db.Preload("Room.Schedule.ConferenceSchedule").Preload("TrackSessions").
		First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Track not found.")
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *TrackService) Update(id uuid.UUID, req dto.UpdateTrackRequest, actor guard.Actor) (*model.TrackModel, error) {
	var existing model.TrackModel
	err := s.db.First(&existing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Track not found.")
	}
	if err != nil {
		return nil, err
	}

	confType, err := s.conferenceTypeByTrack(id)
	if err != nil {
		return nil, err
	}
	if err := guard.EnsureCanManage(actor.Role, confType, "update", "track"); err != nil {
		return nil, err
	}

	if err := s.db.Model(&existing).Updates(req.ToUpdates()).Error; err != nil {
		return nil, err
	}

	var updated model.TrackModel
	if err := s.db.First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete: hard delete; session ikut terhapus via cascade FK, room
// pemilik kehilangan track_id-nya.
func (s *TrackService) Delete(id uuid.UUID, actor guard.Actor) (*model.TrackModel, error) {
	var data model.TrackModel
	err := s.db.First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Track not found.")
	}
	if err != nil {
		return nil, err
	}

	confType, err := s.conferenceTypeByTrack(id)
	if err != nil {
		return nil, err
	}
	if err := guard.EnsureCanManage(actor.Role, confType, "delete", "track"); err != nil {
		return nil, err
	}

	if err := s.db.Delete(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

// conferenceTypeByTrack: jalan rantai Track→Room→Schedule→Conference
// dalam satu query join. Track yatim (belum ditautkan room) memberi
// tipe kosong dan tidak ditolak guard untuk admin manapun.
func (s *TrackService) conferenceTypeByTrack(trackID uuid.UUID) (string, error) {
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

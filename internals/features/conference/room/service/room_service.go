package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"confku_backend/internals/constants"
	"confku_backend/internals/features/conference/guard"
	"confku_backend/internals/features/conference/model"
	"confku_backend/internals/features/conference/room/dto"
	helper "confku_backend/internals/helpers"
	"confku_backend/internals/helpers/querykit"
)

const (
	mainRoomExistsMessage  = "Main room already exists."
	identifierTakenMessage = "Identifier must be unique for PARALLEL rooms within the same schedule."
)

type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

func (s *RoomService) GetAll(q querykit.ListQuery, adv *dto.AdvSearch) ([]model.RoomModel, *querykit.Meta, error) {
	opts := querykit.Build(dto.QueryConfig, q)

	var data []model.RoomModel
	if err := s.applyAdvSearch(opts.Apply(s.db.Model(&model.RoomModel{})), adv).
		Find(&data).Error; err != nil {
		return nil, nil, err
	}

	var count int64
	if err := s.applyAdvSearch(opts.ApplyForCount(s.db.Model(&model.RoomModel{})), adv).
		Count(&count).Error; err != nil {
		return nil, nil, err
	}

	return data, querykit.BuildMeta(count, q), nil
}

// applyAdvSearch: saring via conference pemilik lewat subquery pada
// schedule_id, supaya query dasar bebas join (kolom type/schedule_id
// tetap tidak ambigu).
func (s *RoomService) applyAdvSearch(db *gorm.DB, adv *dto.AdvSearch) *gorm.DB {
	if adv == nil {
		return db
	}

	sub := s.db.Model(&model.ScheduleModel{}).Select("schedules.id")
	if adv.ConferenceScheduleID != nil {
		sub = sub.Where("schedules.conference_schedule_id = ?", *adv.ConferenceScheduleID)
	} else {
		sub = sub.Joins("JOIN conference_schedules ON conference_schedules.id = schedules.conference_schedule_id").
			Where("conference_schedules.deleted_at IS NULL")
		if adv.ConferenceYear != nil {
			sub = sub.Where("conference_schedules.year = ?", *adv.ConferenceYear)
		}
		if adv.ConferenceType != nil {
			sub = sub.Where("conference_schedules.type = ?", *adv.ConferenceType)
		}
		if adv.ConferenceIsActive != nil {
			sub = sub.Where("conference_schedules.is_active = ?", *adv.ConferenceIsActive)
		}
	}

	return db.Where("schedule_id IN (?)", sub)
}

func (s *RoomService) GetByID(id uuid.UUID) (*model.RoomModel, error) {
	var data model.RoomModel
	err := s.db.Preload("Schedule").Preload("Track.TrackSessions").
		First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Room not found.")
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *RoomService) Create(req dto.CreateRoomRequest, actor guard.Actor) (*model.RoomModel, error) {
	confType, err := s.conferenceTypeBySchedule(req.ScheduleID)
	if err != nil {
		return nil, err
	}
	if err := guard.EnsureCanManage(actor.Role, confType, "create", "room"); err != nil {
		return nil, err
	}

	if req.Type == constants.RoomMain {
		if err := s.ensureNoMainRoom(req.ScheduleID); err != nil {
			return nil, err
		}
	}
	if req.Type == constants.RoomParallel && req.Identifier != nil {
		if err := s.ensureIdentifierFree(req.ScheduleID, *req.Identifier, uuid.Nil); err != nil {
			return nil, err
		}
	}

	data := req.ToModel()

	// PARALLEL membawa payload track: buat track dulu lalu tautkan,
	// satu transaksi dengan room-nya.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.Track != nil {
			track := req.Track.ToModel()
			if err := tx.Create(&track).Error; err != nil {
				return err
			}
			data.TrackID = &track.ID
		}
		return tx.Create(&data).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err, "uq_rooms_schedule_main") {
			return nil, helper.NewFieldError(mainRoomExistsMessage, "type")
		}
		if helper.IsUniqueViolation(err, "uq_rooms_schedule_identifier") {
			return nil, helper.NewFieldError(identifierTakenMessage, "identifier")
		}
		return nil, err
	}

	return &data, nil
}

func (s *RoomService) Update(id uuid.UUID, req dto.UpdateRoomRequest, actor guard.Actor) (*model.RoomModel, error) {
	var existing model.RoomModel
	err := s.db.First(&existing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Room not found.")
	}
	if err != nil {
		return nil, err
	}

	confType, err := s.conferenceTypeBySchedule(existing.ScheduleID)
	if err != nil {
		return nil, err
	}
	if err := guard.EnsureCanManage(actor.Role, confType, "update", "room"); err != nil {
		return nil, err
	}

	targetScheduleID := existing.ScheduleID
	if req.ScheduleID != nil {
		targetType, err := s.conferenceTypeBySchedule(*req.ScheduleID)
		if err != nil {
			return nil, err
		}
		if err := guard.EnsureCanManage(actor.Role, targetType, "update", "room"); err != nil {
			return nil, err
		}
		targetScheduleID = *req.ScheduleID
	}

	// singleton MAIN hanya dicek saat transisi menuju MAIN
	if req.Type != nil && *req.Type == constants.RoomMain && existing.Type != constants.RoomMain {
		if err := s.ensureNoMainRoom(targetScheduleID); err != nil {
			return nil, err
		}
	}

	if req.Identifier != nil && existing.Type == constants.RoomParallel {
		if err := s.ensureIdentifierFree(targetScheduleID, *req.Identifier, existing.ID); err != nil {
			return nil, err
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.Track != nil && existing.TrackID != nil {
			trackUpdates := map[string]any{"name": req.Track.Name}
			if req.Track.Description != nil {
				trackUpdates["description"] = *req.Track.Description
			}
			if err := tx.Model(&model.TrackModel{}).
				Where("id = ?", *existing.TrackID).
				Updates(trackUpdates).Error; err != nil {
				return err
			}
		}
		return tx.Model(&existing).Updates(req.ToUpdates()).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err, "uq_rooms_schedule_main") {
			return nil, helper.NewFieldError(mainRoomExistsMessage, "type")
		}
		if helper.IsUniqueViolation(err, "uq_rooms_schedule_identifier") {
			return nil, helper.NewFieldError(identifierTakenMessage, "identifier")
		}
		return nil, err
	}

	var updated model.RoomModel
	if err := s.db.First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete: hard delete. FK rooms.track_id menunjuk ke tracks, bukan
// sebaliknya, jadi track (beserta session-nya) harus dihapus eksplisit
// dalam satu transaksi; room dulu supaya FK-nya lepas.
func (s *RoomService) Delete(id uuid.UUID, actor guard.Actor) (*model.RoomModel, error) {
	var data model.RoomModel
	err := s.db.First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Room not found.")
	}
	if err != nil {
		return nil, err
	}

	confType, err := s.conferenceTypeBySchedule(data.ScheduleID)
	if err != nil {
		return nil, err
	}
	if err := guard.EnsureCanManage(actor.Role, confType, "delete", "room"); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&data).Error; err != nil {
			return err
		}
		if data.TrackID == nil {
			return nil
		}
		if err := deleteTrackSessions(tx, *data.TrackID).Error; err != nil {
			return err
		}
		return deleteTrack(tx, *data.TrackID).Error
	})
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func deleteTrackSessions(tx *gorm.DB, trackID uuid.UUID) *gorm.DB {
	return tx.Where("track_id = ?", trackID).Delete(&model.TrackSessionModel{})
}

func deleteTrack(tx *gorm.DB, trackID uuid.UUID) *gorm.DB {
	return tx.Where("id = ?", trackID).Delete(&model.TrackModel{})
}

func (s *RoomService) conferenceTypeBySchedule(scheduleID uuid.UUID) (string, error) {
	var confType string
	err := s.db.Model(&model.ScheduleModel{}).
		Select("conference_schedules.type").
		Joins("JOIN conference_schedules ON conference_schedules.id = schedules.conference_schedule_id").
		Where("schedules.id = ? AND conference_schedules.deleted_at IS NULL", scheduleID).
		Scan(&confType).Error
	if err != nil {
		return "", err
	}
	if confType == "" {
		return "", helper.NewFieldError("Schedule not found.", "schedule_id")
	}
	return confType, nil
}

func (s *RoomService) ensureNoMainRoom(scheduleID uuid.UUID) error {
	var count int64
	if err := s.db.Model(&model.RoomModel{}).
		Where("schedule_id = ? AND type = ?", scheduleID, constants.RoomMain).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return helper.NewFieldError(mainRoomExistsMessage, "type")
	}
	return nil
}

func (s *RoomService) ensureIdentifierFree(scheduleID uuid.UUID, identifier string, excludeID uuid.UUID) error {
	q := s.db.Model(&model.RoomModel{}).
		Where("schedule_id = ? AND identifier = ?", scheduleID, identifier)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return helper.NewFieldError(identifierTakenMessage, "identifier")
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// RoomModel merepresentasikan tabel rooms. Satu MAIN room per schedule
// dan identifier unik antar PARALLEL room dalam schedule yang sama,
// keduanya dijaga partial unique index + pengecekan service-level.
type RoomModel struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"size:100;not null" json:"name"`

	Identifier  *string `gorm:"size:50;uniqueIndex:uq_rooms_schedule_identifier,where:type = 'PARALLEL' AND identifier IS NOT NULL" json:"identifier"`
	Description *string `gorm:"type:text" json:"description"`

	Type string `gorm:"type:varchar(20);not null;uniqueIndex:uq_rooms_schedule_main,where:type = 'MAIN'" json:"type"`

	OnlineMeetingURL *string `gorm:"size:512" json:"online_meeting_url"`

	// HH:mm — null untuk MAIN, wajib untuk PARALLEL.
	StartTime *string `gorm:"size:5" json:"start_time"`
	EndTime   *string `gorm:"size:5" json:"end_time"`

	ScheduleID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_rooms_schedule_main;uniqueIndex:uq_rooms_schedule_identifier" json:"schedule_id"`
	TrackID    *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"track_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Schedule *ScheduleModel `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
	Track    *TrackModel    `gorm:"foreignKey:TrackID;constraint:OnDelete:CASCADE" json:"track,omitempty"`
}

func (RoomModel) TableName() string {
	return "rooms"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScheduleModel merepresentasikan satu slot harian milik sebuah
// conference schedule. Hard delete only — cascade ke rooms.
type ScheduleModel struct {
	ID   uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date datatypes.Date `gorm:"not null" json:"date"`
	Type string         `gorm:"type:varchar(20);not null" json:"type"`

	// HH:mm — null saat type = ONE_DAY_ACTIVITY.
	StartTime *string `gorm:"size:5" json:"start_time"`
	EndTime   *string `gorm:"size:5" json:"end_time"`

	Notes *string `gorm:"type:text" json:"notes"`

	ConferenceScheduleID uuid.UUID `gorm:"type:uuid;not null;index" json:"conference_schedule_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	ConferenceSchedule *ConferenceScheduleModel `gorm:"foreignKey:ConferenceScheduleID" json:"conference_schedule,omitempty"`
	Rooms              []RoomModel              `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}

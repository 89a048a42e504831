package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ConferenceScheduleModel merepresentasikan tabel conference_schedules.
// Uniqueness (year, type) dijaga partial unique index (deleted_at IS NULL)
// di samping pengecekan service-level.
type ConferenceScheduleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`

	Year string `gorm:"size:4;not null;uniqueIndex:uq_conference_schedules_year_type,where:deleted_at IS NULL" json:"year"`
	Type string `gorm:"type:varchar(20);not null;uniqueIndex:uq_conference_schedules_year_type,where:deleted_at IS NULL" json:"type"`

	StartDate datatypes.Date `gorm:"not null" json:"start_date"`
	EndDate   datatypes.Date `gorm:"not null" json:"end_date"`

	IsActive bool `gorm:"not null;default:false" json:"is_active"`

	ContactEmail string `gorm:"size:255;not null" json:"contact_email"`
	TimezoneIana string `gorm:"size:64;not null" json:"timezone_iana"`

	OnsitePresentation string  `gorm:"type:text;not null" json:"onsite_presentation"`
	OnlinePresentation string  `gorm:"type:text;not null" json:"online_presentation"`
	Notes              *string `gorm:"type:text" json:"notes"`
	NoShowPolicy       *string `gorm:"type:text" json:"no_show_policy"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Schedules []ScheduleModel `gorm:"foreignKey:ConferenceScheduleID;constraint:OnDelete:CASCADE" json:"schedules,omitempty"`
}

func (ConferenceScheduleModel) TableName() string {
	return "conference_schedules"
}

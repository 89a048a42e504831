package model

import (
	"time"

	"github.com/google/uuid"
)

// TrackSessionModel merepresentasikan satu presentasi paper di dalam track.
type TrackSessionModel struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PaperID string    `gorm:"size:50;not null" json:"paper_id"`
	Title   string    `gorm:"type:text;not null" json:"title"`
	Authors string    `gorm:"type:text;not null" json:"authors"`
	Mode    string    `gorm:"type:varchar(20);not null" json:"mode"`
	Notes   *string   `gorm:"type:text" json:"notes"`

	// HH:mm
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	TrackID uuid.UUID `gorm:"type:uuid;not null;index" json:"track_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Track *TrackModel `gorm:"foreignKey:TrackID" json:"track,omitempty"`
}

func (TrackSessionModel) TableName() string {
	return "track_sessions"
}

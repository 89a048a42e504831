package model

import (
	"time"

	"github.com/google/uuid"
)

// TrackModel merepresentasikan tabel tracks (1:1 dengan PARALLEL room).
type TrackModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Room          *RoomModel          `gorm:"foreignKey:TrackID" json:"room,omitempty"`
	TrackSessions []TrackSessionModel `gorm:"foreignKey:TrackID;constraint:OnDelete:CASCADE" json:"track_sessions,omitempty"`
}

func (TrackModel) TableName() string {
	return "tracks"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users. Password tidak pernah ikut
// terserialisasi ke response.
type UserModel struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name  string    `gorm:"size:100;not null" json:"name"`
	Email string    `gorm:"size:255;not null;uniqueIndex:uq_users_email" json:"email"`

	Password string `gorm:"size:255;not null" json:"-"`

	ProfileURI *string `gorm:"size:512" json:"profile_uri"`

	Role string `gorm:"type:varchar(20);not null" json:"role"`

	VerifiedAt *time.Time `json:"verified_at"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (UserModel) TableName() string {
	return "users"
}

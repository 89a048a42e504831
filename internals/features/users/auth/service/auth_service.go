package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"confku_backend/internals/features/users/model"
	helper "confku_backend/internals/helpers"
)

type LoginResult struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	User         *model.UserModel `json:"user"`
}

type RefreshResult struct {
	AccessToken string `json:"access_token"`
}

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	var user model.UserModel
	err := s.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}

	if !MatchPassword(password, user.Password) {
		return nil, helper.BadRequest("Invalid credentials")
	}

	accessToken, err := GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         &user,
	}, nil
}

func (s *AuthService) RefreshToken(token string) (*RefreshResult, error) {
	claims, err := ParseRefreshToken(token)
	if err != nil {
		return nil, err
	}

	var user model.UserModel
	err = s.db.First(&user, "id = ?", claims.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}

	accessToken, err := GenerateAccessToken(user.ID, claims.Role)
	if err != nil {
		return nil, err
	}
	return &RefreshResult{AccessToken: accessToken}, nil
}

func (s *AuthService) GetProfile(id uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	err := s.db.
		Select("id", "name", "email", "profile_uri", "role", "verified_at", "created_at", "updated_at", "deleted_at").
		First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "confku_backend/internals/features/users/auth/service"
	"confku_backend/internals/features/users/model"
	"confku_backend/internals/features/users/user/dto"
	helper "confku_backend/internals/helpers"
	"confku_backend/internals/helpers/querykit"
)

const emailTakenMessage = "Email already taken."

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetAll(q querykit.ListQuery) ([]model.UserModel, *querykit.Meta, error) {
	opts := querykit.Build(dto.QueryConfig, q)

	var data []model.UserModel
	if err := opts.Apply(s.db.Model(&model.UserModel{})).Find(&data).Error; err != nil {
		return nil, nil, err
	}

	var count int64
	if err := opts.ApplyForCount(s.db.Model(&model.UserModel{})).Count(&count).Error; err != nil {
		return nil, nil, err
	}

	return data, querykit.BuildMeta(count, q), nil
}

func (s *UserService) GetByID(id uuid.UUID) (*model.UserModel, error) {
	var data model.UserModel
	err := s.db.First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("User not found.")
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *UserService) Create(req dto.CreateUserRequest) (*model.UserModel, error) {
	// email harus bebas juga dari akun yang sudah soft-deleted
	var exists int64
	if err := s.db.Unscoped().Model(&model.UserModel{}).
		Where("email = ?", req.Email).
		Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists > 0 {
		return nil, helper.NewFieldError(emailTakenMessage, "email")
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	data := req.ToModel()
	data.Password = hashed

	if err := s.db.Create(&data).Error; err != nil {
		if helper.IsUniqueViolation(err, "uq_users_email") {
			return nil, helper.NewFieldError(emailTakenMessage, "email")
		}
		return nil, err
	}

	return &data, nil
}

func (s *UserService) Update(id uuid.UUID, req dto.UpdateUserRequest) (*model.UserModel, error) {
	var existing model.UserModel
	err := s.db.First(&existing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("User not found.")
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&existing).Updates(req.ToUpdates()).Error; err != nil {
		if helper.IsUniqueViolation(err, "uq_users_email") {
			return nil, helper.NewFieldError(emailTakenMessage, "email")
		}
		return nil, err
	}

	var updated model.UserModel
	if err := s.db.First(&updated, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *UserService) SoftDelete(id uuid.UUID) (*model.UserModel, error) {
	var data model.UserModel
	err := s.db.First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("User not found.")
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

// HardDelete: hanya boleh setelah soft delete.
func (s *UserService) HardDelete(id uuid.UUID) (*model.UserModel, error) {
	var data model.UserModel
	err := s.db.Unscoped().First(&data, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("User not found.")
	}
	if err != nil {
		return nil, err
	}

	if !data.DeletedAt.Valid {
		return nil, helper.BadRequest("User must be soft deleted first before hard delete.")
	}

	if err := s.db.Unscoped().Delete(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

package services

import (
	"membrostotal_backend/internal/auth"
	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/internal/services/dto"
	"membrostotal_backend/pkg/apperrors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	ChangePassword(userID uint, req *dto.ChangePasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		return nil, apperrors.NewForbiddenError("Usuário inativo")
	}

	profileName := ""
	if user.Profile != nil {
		profileName = user.Profile.Name
	}

	token, err := auth.GenerateToken(user.ID, profileName)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) ChangePassword(userID uint, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.NewBadRequestError("Senha atual incorreta")
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(userID, hash); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

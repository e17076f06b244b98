package services

import (
	"context"
	"io"

	"membrostotal_backend/internal/auth"
	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/internal/services/dto"
	"membrostotal_backend/internal/storage"
	"membrostotal_backend/pkg/apperrors"
	"membrostotal_backend/pkg/pagination"
)

type UserService interface {
	Create(req *dto.CreateUserRequest) (*dto.UserResponse, error)
	FindByID(id uint) (*dto.UserResponse, error)
	List(query *dto.ListUsersQuery, p pagination.Params) (*pagination.Envelope[dto.UserResponse], error)
	Update(id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	UpdateMe(userID uint, req *dto.UpdateMeRequest) (*dto.UserResponse, error)
	ResetPassword(id uint, req *dto.ResetPasswordRequest) error
	Delete(id uint) error
	ListProfiles() ([]dto.ProfileResponse, error)

	UploadPhoto(ctx context.Context, userID uint, reader io.Reader, size int64, contentType, ext string) error
	PhotoURL(ctx context.Context, userID uint) (string, error)
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	storage     storage.Storage
}

func NewUserService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	store storage.Storage,
) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		storage:     store,
	}
}

func (s *UserServiceImpl) Create(req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	profile, err := s.profileRepo.FindByName(req.Profile)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewBadRequestError("Perfil inválido")
		}
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    req.BirthDate,
		ProfileID:    &profile.ID,
		Status:       models.UserStatusActive,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	user.Profile = profile
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) FindByID(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) List(query *dto.ListUsersQuery, p pagination.Params) (*pagination.Envelope[dto.UserResponse], error) {
	filter := repositories.UserFilter{
		ProfileName: query.Profile,
		Status:      models.UserStatus(query.Status),
		Search:      query.Search,
		Pagination:  p,
	}

	users, total, err := s.userRepo.FindAll(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return pagination.NewEnvelope(dto.NewUserResponses(users), p, total), nil
}

func (s *UserServiceImpl) Update(id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.BirthDate != nil {
		user.BirthDate = req.BirthDate
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Profile != nil {
		profile, err := s.profileRepo.FindByName(*req.Profile)
		if err != nil {
			if apperrors.Is(err, repositories.ErrProfileNotFound) {
				return nil, apperrors.NewBadRequestError("Perfil inválido")
			}
			return nil, apperrors.InternalError(err)
		}
		user.ProfileID = &profile.ID
		user.Profile = profile
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) UpdateMe(userID uint, req *dto.UpdateMeRequest) (*dto.UserResponse, error) {
	return s.Update(userID, &dto.UpdateUserRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
	})
}

func (s *UserServiceImpl) ResetPassword(id uint, req *dto.ResetPasswordRequest) error {
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(id, hash); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) Delete(id uint) error {
	if err := s.userRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) ListProfiles() ([]dto.ProfileResponse, error) {
	profiles, err := s.profileRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, *dto.NewProfileResponse(&profiles[i]))
	}
	return out, nil
}

func (s *UserServiceImpl) UploadPhoto(ctx context.Context, userID uint, reader io.Reader, size int64, contentType, ext string) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	key := storage.UserPhotoKey(userID, ext)
	if err := s.storage.Save(ctx, key, reader, size, contentType); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePhotoKey(userID, key); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) PhotoURL(ctx context.Context, userID uint) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrNotFound(err)
		}
		return "", apperrors.InternalError(err)
	}

	if user.PhotoKey == "" {
		return "", apperrors.NewNotFoundError("Usuário não possui foto")
	}

	url, err := s.storage.SignedURL(ctx, user.PhotoKey, storage.SignedURLExpiry)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

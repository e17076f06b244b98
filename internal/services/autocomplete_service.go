package services

import (
	"strings"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/internal/services/dto"
	"membrostotal_backend/pkg/apperrors"
)

type AutocompleteService interface {
	// Fetch resolves a comma-separated field list into reference data.
	// Unknown field names are ignored; an empty list yields an empty
	// response.
	Fetch(fieldsCSV string) (*dto.AutocompleteResponse, error)
}

type AutocompleteServiceImpl struct {
	userRepo        repositories.UserRepository
	profileRepo     repositories.ProfileRepository
	paymentTypeRepo repositories.PaymentTypeRepository
	trainingRepo    repositories.TrainingRepository
	moduleRepo      repositories.ModuleRepository
	subModuleRepo   repositories.SubModuleRepository
}

func NewAutocompleteService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	paymentTypeRepo repositories.PaymentTypeRepository,
	trainingRepo repositories.TrainingRepository,
	moduleRepo repositories.ModuleRepository,
	subModuleRepo repositories.SubModuleRepository,
) AutocompleteService {
	return &AutocompleteServiceImpl{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		paymentTypeRepo: paymentTypeRepo,
		trainingRepo:    trainingRepo,
		moduleRepo:      moduleRepo,
		subModuleRepo:   subModuleRepo,
	}
}

func (s *AutocompleteServiceImpl) Fetch(fieldsCSV string) (*dto.AutocompleteResponse, error) {
	resp := &dto.AutocompleteResponse{}

	for _, field := range strings.Split(fieldsCSV, ",") {
		var err error
		switch strings.TrimSpace(field) {
		case "users":
			resp.Users, err = s.users()
		case "experts":
			resp.Experts, err = s.experts()
		case "profiles":
			resp.Profiles, err = s.profiles()
		case "payment_types":
			resp.PaymentTypes, err = s.paymentTypes()
		case "trainings":
			resp.Trainings, err = s.trainings()
		case "modules":
			resp.Modules, err = s.modules()
		case "sub_modules":
			resp.SubModules, err = s.subModules()
		}
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return resp, nil
}

func (s *AutocompleteServiceImpl) users() ([]dto.AutocompleteOption, error) {
	users, err := s.userRepo.FindActive()
	if err != nil {
		return nil, err
	}
	return userOptions(users), nil
}

func (s *AutocompleteServiceImpl) experts() ([]dto.AutocompleteOption, error) {
	experts, err := s.userRepo.FindByProfileName(models.ProfileExpert)
	if err != nil {
		return nil, err
	}
	return userOptions(experts), nil
}

func (s *AutocompleteServiceImpl) profiles() ([]dto.AutocompleteOption, error) {
	profiles, err := s.profileRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AutocompleteOption, 0, len(profiles))
	for i := range profiles {
		out = append(out, dto.AutocompleteOption{ID: profiles[i].ID, Label: profiles[i].Label})
	}
	return out, nil
}

func (s *AutocompleteServiceImpl) paymentTypes() ([]dto.AutocompleteOption, error) {
	types, err := s.paymentTypeRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AutocompleteOption, 0, len(types))
	for i := range types {
		out = append(out, dto.AutocompleteOption{ID: types[i].ID, Label: types[i].Label})
	}
	return out, nil
}

func (s *AutocompleteServiceImpl) trainings() ([]dto.AutocompleteOption, error) {
	trainings, err := s.trainingRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AutocompleteOption, 0, len(trainings))
	for i := range trainings {
		out = append(out, dto.AutocompleteOption{ID: trainings[i].ID, Label: trainings[i].Title})
	}
	return out, nil
}

func (s *AutocompleteServiceImpl) modules() ([]dto.AutocompleteOption, error) {
	modules, err := s.moduleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AutocompleteOption, 0, len(modules))
	for i := range modules {
		out = append(out, dto.AutocompleteOption{ID: modules[i].ID, Label: modules[i].Title})
	}
	return out, nil
}

func (s *AutocompleteServiceImpl) subModules() ([]dto.AutocompleteOption, error) {
	subModules, err := s.subModuleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AutocompleteOption, 0, len(subModules))
	for i := range subModules {
		out = append(out, dto.AutocompleteOption{ID: subModules[i].ID, Label: subModules[i].Title})
	}
	return out, nil
}

func userOptions(users []models.User) []dto.AutocompleteOption {
	out := make([]dto.AutocompleteOption, 0, len(users))
	for i := range users {
		out = append(out, dto.AutocompleteOption{ID: users[i].ID, Label: users[i].FullName()})
	}
	return out
}

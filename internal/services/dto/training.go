package dto

import (
	"time"

	"membrostotal_backend/internal/models"
)

type CreateTrainingRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type UpdateTrainingRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

type CreateModuleRequest struct {
	TrainingID  uint   `json:"trainingId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type UpdateModuleRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

type CreateSubModuleRequest struct {
	ModuleID    uint   `json:"moduleId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type UpdateSubModuleRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

type CreateLessonRequest struct {
	SubModuleID uint   `json:"subModuleId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Content     string `json:"content" validate:"omitempty,url"`
	Order       int    `json:"order"`
}

type UpdateLessonRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content" validate:"omitempty,url"`
	Order       *int    `json:"order"`
}

// SetUsersRequest assigns the viewer permission set of a content node.
type SetUsersRequest struct {
	UserIDs []uint `json:"userIds" validate:"required"`
}

type TrainingResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ModuleResponse struct {
	ID          uint      `json:"id"`
	TrainingID  uint      `json:"trainingId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SubModuleResponse struct {
	ID          uint      `json:"id"`
	ModuleID    uint      `json:"moduleId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LessonResponse struct {
	ID          uint      `json:"id"`
	SubModuleID uint      `json:"subModuleId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewTrainingResponse(t *models.Training) TrainingResponse {
	return TrainingResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Order:       t.Order,
		CreatedAt:   t.CreatedAt,
	}
}

func NewTrainingResponses(trainings []models.Training) []TrainingResponse {
	out := make([]TrainingResponse, 0, len(trainings))
	for i := range trainings {
		out = append(out, NewTrainingResponse(&trainings[i]))
	}
	return out
}

func NewModuleResponse(m *models.Module) ModuleResponse {
	return ModuleResponse{
		ID:          m.ID,
		TrainingID:  m.TrainingID,
		Title:       m.Title,
		Description: m.Description,
		Order:       m.Order,
		CreatedAt:   m.CreatedAt,
	}
}

func NewModuleResponses(modules []models.Module) []ModuleResponse {
	out := make([]ModuleResponse, 0, len(modules))
	for i := range modules {
		out = append(out, NewModuleResponse(&modules[i]))
	}
	return out
}

func NewSubModuleResponse(s *models.SubModule) SubModuleResponse {
	return SubModuleResponse{
		ID:          s.ID,
		ModuleID:    s.ModuleID,
		Title:       s.Title,
		Description: s.Description,
		Order:       s.Order,
		CreatedAt:   s.CreatedAt,
	}
}

func NewSubModuleResponses(subModules []models.SubModule) []SubModuleResponse {
	out := make([]SubModuleResponse, 0, len(subModules))
	for i := range subModules {
		out = append(out, NewSubModuleResponse(&subModules[i]))
	}
	return out
}

func NewLessonResponse(l *models.Lesson) LessonResponse {
	return LessonResponse{
		ID:          l.ID,
		SubModuleID: l.SubModuleID,
		Title:       l.Title,
		Description: l.Description,
		Content:     l.Content,
		Order:       l.Order,
		CreatedAt:   l.CreatedAt,
	}
}

func NewLessonResponses(lessons []models.Lesson) []LessonResponse {
	out := make([]LessonResponse, 0, len(lessons))
	for i := range lessons {
		out = append(out, NewLessonResponse(&lessons[i]))
	}
	return out
}

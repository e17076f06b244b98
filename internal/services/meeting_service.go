package services

import (
	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/internal/services/dto"
	"membrostotal_backend/pkg/apperrors"
	"membrostotal_backend/pkg/pagination"
)

type MeetingService interface {
	Create(req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error)
	FindByID(id uint) (*dto.MeetingResponse, error)
	List(p pagination.Params) (*pagination.Envelope[dto.MeetingResponse], error)
	ListForUser(userID uint, p pagination.Params) (*pagination.Envelope[dto.MeetingResponse], error)
	Update(id uint, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, error)
	UpdateStatus(id uint, req *dto.UpdateMeetingStatusRequest) (*dto.MeetingResponse, error)
	Delete(id uint) error
}

type MeetingServiceImpl struct {
	meetingRepo repositories.MeetingRepository
}

func NewMeetingService(meetingRepo repositories.MeetingRepository) MeetingService {
	return &MeetingServiceImpl{meetingRepo: meetingRepo}
}

func (s *MeetingServiceImpl) Create(req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error) {
	meeting := &models.Meeting{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Date:        req.Date,
		Status:      models.MeetingStatusPending,
	}
	if err := s.meetingRepo.Create(meeting, req.UserIDs); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.FindByID(meeting.ID)
}

func (s *MeetingServiceImpl) FindByID(id uint) (*dto.MeetingResponse, error) {
	meeting, err := s.meetingRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMeetingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewMeetingResponse(meeting)
	return &resp, nil
}

func (s *MeetingServiceImpl) List(p pagination.Params) (*pagination.Envelope[dto.MeetingResponse], error) {
	meetings, total, err := s.meetingRepo.FindAll(p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return pagination.NewEnvelope(dto.NewMeetingResponses(meetings), p, total), nil
}

func (s *MeetingServiceImpl) ListForUser(userID uint, p pagination.Params) (*pagination.Envelope[dto.MeetingResponse], error) {
	meetings, total, err := s.meetingRepo.FindForUser(userID, p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return pagination.NewEnvelope(dto.NewMeetingResponses(meetings), p, total), nil
}

func (s *MeetingServiceImpl) Update(id uint, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, error) {
	meeting, err := s.meetingRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMeetingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.Description != nil {
		meeting.Description = *req.Description
	}
	if req.Link != nil {
		meeting.Link = *req.Link
	}
	if req.Date != nil {
		meeting.Date = *req.Date
	}

	if err := s.meetingRepo.Update(meeting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.UserIDs != nil {
		if err := s.meetingRepo.SetUsers(id, req.UserIDs); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.FindByID(id)
}

func (s *MeetingServiceImpl) UpdateStatus(id uint, req *dto.UpdateMeetingStatusRequest) (*dto.MeetingResponse, error) {
	meeting, err := s.meetingRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMeetingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// done and canceled are final, only pending meetings can move.
	if meeting.Status != models.MeetingStatusPending {
		return nil, apperrors.ErrInvalidStatus("meeting", "Reunião já está em status final: "+string(meeting.Status))
	}
	if req.Status == models.MeetingStatusPending {
		return nil, apperrors.ErrInvalidStatus("meeting", "Transição de status inválida")
	}

	if err := s.meetingRepo.UpdateStatus(id, req.Status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.FindByID(id)
}

func (s *MeetingServiceImpl) Delete(id uint) error {
	if err := s.meetingRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrMeetingNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

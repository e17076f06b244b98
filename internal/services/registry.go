package services

import (
	"gorm.io/gorm"

	"membrostotal_backend/internal/email"
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService           AuthService
	UserService           UserService
	TrainingService       TrainingService
	ModuleService         ModuleService
	SubModuleService      SubModuleService
	LessonService         LessonService
	PaymentService        PaymentService
	PaymentRequestService PaymentRequestService
	RefundService         RefundService
	NotificationService   NotificationService
	MeetingService        MeetingService
	ExpertRequestService  ExpertRequestService
	UtmService            UtmService
	AutocompleteService   AutocompleteService
}

// NewServiceContainer wires repositories and infrastructure into the
// full service set.
func NewServiceContainer(db *gorm.DB, store storage.Storage, mailer *email.Sender) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	trainingRepo := repositories.NewTrainingRepository(db)
	moduleRepo := repositories.NewModuleRepository(db)
	subModuleRepo := repositories.NewSubModuleRepository(db)
	lessonRepo := repositories.NewLessonRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	paymentRequestRepo := repositories.NewPaymentRequestRepository(db)
	refundRepo := repositories.NewRefundRepository(db)
	paymentTypeRepo := repositories.NewPaymentTypeRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	meetingRepo := repositories.NewMeetingRepository(db)
	expertRequestRepo := repositories.NewExpertRequestRepository(db)
	utmRepo := repositories.NewUtmRepository(db)

	return &ServiceContainer{
		AuthService:           NewAuthService(userRepo),
		UserService:           NewUserService(userRepo, profileRepo, store),
		TrainingService:       NewTrainingService(trainingRepo, store),
		ModuleService:         NewModuleService(moduleRepo, trainingRepo, store),
		SubModuleService:      NewSubModuleService(subModuleRepo, moduleRepo, store),
		LessonService:         NewLessonService(lessonRepo, subModuleRepo, store),
		PaymentService:        NewPaymentService(paymentRepo, paymentTypeRepo, userRepo, store),
		PaymentRequestService: NewPaymentRequestService(paymentRequestRepo, paymentTypeRepo, store),
		RefundService:         NewRefundService(refundRepo, paymentTypeRepo, userRepo, store),
		NotificationService:   NewNotificationService(notificationRepo, userRepo),
		MeetingService:        NewMeetingService(meetingRepo),
		ExpertRequestService:  NewExpertRequestService(expertRequestRepo, mailer),
		UtmService:            NewUtmService(utmRepo),
		AutocompleteService: NewAutocompleteService(
			userRepo, profileRepo, paymentTypeRepo,
			trainingRepo, moduleRepo, subModuleRepo,
		),
	}
}

package handlers

import (
	"membrostotal_backend/internal/services"
	"membrostotal_backend/internal/validator"
)

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler           *AuthHandler
	UserHandler           *UserHandler
	TrainingHandler       *TrainingHandler
	ModuleHandler         *ModuleHandler
	SubModuleHandler      *SubModuleHandler
	LessonHandler         *LessonHandler
	PaymentHandler        *PaymentHandler
	PaymentRequestHandler *PaymentRequestHandler
	RefundHandler         *RefundHandler
	NotificationHandler   *NotificationHandler
	MeetingHandler        *MeetingHandler
	ExpertRequestHandler  *ExpertRequestHandler
	UtmHandler            *UtmHandler
	AutocompleteHandler   *AutocompleteHandler
}

// NewAppHandlers builds the handler set over the service container.
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:           NewAuthHandler(base, sc.AuthService),
		UserHandler:           NewUserHandler(base, sc.UserService, sc.AuthService),
		TrainingHandler:       NewTrainingHandler(base, sc.TrainingService),
		ModuleHandler:         NewModuleHandler(base, sc.ModuleService),
		SubModuleHandler:      NewSubModuleHandler(base, sc.SubModuleService),
		LessonHandler:         NewLessonHandler(base, sc.LessonService),
		PaymentHandler:        NewPaymentHandler(base, sc.PaymentService),
		PaymentRequestHandler: NewPaymentRequestHandler(base, sc.PaymentRequestService),
		RefundHandler:         NewRefundHandler(base, sc.RefundService),
		NotificationHandler:   NewNotificationHandler(base, sc.NotificationService),
		MeetingHandler:        NewMeetingHandler(base, sc.MeetingService),
		ExpertRequestHandler:  NewExpertRequestHandler(base, sc.ExpertRequestService),
		UtmHandler:            NewUtmHandler(base, sc.UtmService),
		AutocompleteHandler:   NewAutocompleteHandler(base, sc.AutocompleteService),
	}
}

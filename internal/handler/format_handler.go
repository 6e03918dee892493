package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"metargb/calendar-format/internal/ics"
	"metargb/calendar-format/internal/models"
	"metargb/calendar-format/internal/service"
	"metargb/calendar-format/pkg/helpers"
)

// FormatService is what the handler needs from the service layer.
type FormatService interface {
	FormatToken(ctx context.Context, req *models.FormatTokenRequest) (string, error)
	FormatView(ctx context.Context, req *models.FormatViewRequest) (string, error)
	FormatDate(ctx context.Context, req *models.FormatDateRequest) (string, error)
	FormatAlarm(ctx context.Context, req *models.FormatAlarmRequest) (string, error)
	ImportAlarms(ctx context.Context, req *models.ImportAlarmsRequest) (*models.ImportAlarmsResponse, error)
	UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.UserSettings, error)
}

type FormatHandler struct {
	service   FormatService
	validator *helpers.CustomValidator
}

func NewFormatHandler(svc FormatService) *FormatHandler {
	return &FormatHandler{service: svc, validator: helpers.NewCustomValidator()}
}

func RegisterFormatHandler(grpcServer *grpc.Server, svc FormatService) {
	RegisterFormatterServer(grpcServer, NewFormatHandler(svc))
}

// validate returns an InvalidArgument status whose message is the JSON
// field map of the violations, localized to locale.
func (h *FormatHandler) validate(req interface{}, locale string) error {
	err := h.validator.Validate(req)
	if err == nil {
		return nil
	}
	if fields := helpers.ValidationFields(err, locale); fields != nil {
		return status.Error(codes.InvalidArgument, helpers.EncodeValidationError(fields))
	}
	return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
}

func mapError(op string, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidDateInput),
		errors.Is(err, ics.ErrEmptyBody),
		errors.Is(err, ics.ErrInvalidCalendar),
		errors.Is(err, ics.ErrInvalidDuration):
		return status.Errorf(codes.InvalidArgument, "%s: %v", op, err)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

// FormatToken formats a date or range with a display token
func (h *FormatHandler) FormatToken(ctx context.Context, req *models.FormatTokenRequest) (*models.TextResponse, error) {
	if err := h.validate(req, req.Locale); err != nil {
		return nil, err
	}

	text, err := h.service.FormatToken(ctx, req)
	if err != nil {
		return nil, mapError("failed to format token", err)
	}
	return &models.TextResponse{Text: text}, nil
}

// FormatView renders the title of a calendar view
func (h *FormatHandler) FormatView(ctx context.Context, req *models.FormatViewRequest) (*models.TextResponse, error) {
	if err := h.validate(req, req.Locale); err != nil {
		return nil, err
	}

	text, err := h.service.FormatView(ctx, req)
	if err != nil {
		return nil, mapError("failed to format view", err)
	}
	return &models.TextResponse{Text: text}, nil
}

// FormatDate renders a single date
func (h *FormatHandler) FormatDate(ctx context.Context, req *models.FormatDateRequest) (*models.TextResponse, error) {
	if err := h.validate(req, req.Locale); err != nil {
		return nil, err
	}

	text, err := h.service.FormatDate(ctx, req)
	if err != nil {
		return nil, mapError("failed to format date", err)
	}
	return &models.TextResponse{Text: text}, nil
}

// FormatAlarm describes an alarm
func (h *FormatHandler) FormatAlarm(ctx context.Context, req *models.FormatAlarmRequest) (*models.TextResponse, error) {
	if err := h.validate(req, req.Locale); err != nil {
		return nil, err
	}

	text, err := h.service.FormatAlarm(ctx, req)
	if err != nil {
		return nil, mapError("failed to format alarm", err)
	}
	return &models.TextResponse{Text: text}, nil
}

// ImportAlarms describes the alarms of an iCalendar payload
func (h *FormatHandler) ImportAlarms(ctx context.Context, req *models.ImportAlarmsRequest) (*models.ImportAlarmsResponse, error) {
	if err := h.validate(req, req.Locale); err != nil {
		return nil, err
	}

	resp, err := h.service.ImportAlarms(ctx, req)
	if err != nil {
		return nil, mapError("failed to import alarms", err)
	}
	return resp, nil
}

// UpdateSettings stores a user's locale and timezone
func (h *FormatHandler) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	if err := h.validate(req, req.Locale); err != nil {
		return nil, err
	}

	settings, err := h.service.UpdateSettings(ctx, req)
	if err != nil {
		return nil, mapError("failed to update settings", err)
	}
	return &models.SettingsResponse{Settings: settings}, nil
}

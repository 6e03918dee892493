package handler

import (
	"context"

	"google.golang.org/grpc"

	"metargb/calendar-format/internal/models"
)

// FormatterClient calls the formatter service with the JSON codec.
type FormatterClient struct {
	cc grpc.ClientConnInterface
}

func NewFormatterClient(cc grpc.ClientConnInterface) *FormatterClient {
	return &FormatterClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FormatterClient) FormatToken(ctx context.Context, in *models.FormatTokenRequest, opts ...grpc.CallOption) (*models.TextResponse, error) {
	return invoke[models.TextResponse](ctx, c.cc, MethodFormatToken, in, opts)
}

func (c *FormatterClient) FormatView(ctx context.Context, in *models.FormatViewRequest, opts ...grpc.CallOption) (*models.TextResponse, error) {
	return invoke[models.TextResponse](ctx, c.cc, MethodFormatView, in, opts)
}

func (c *FormatterClient) FormatDate(ctx context.Context, in *models.FormatDateRequest, opts ...grpc.CallOption) (*models.TextResponse, error) {
	return invoke[models.TextResponse](ctx, c.cc, MethodFormatDate, in, opts)
}

func (c *FormatterClient) FormatAlarm(ctx context.Context, in *models.FormatAlarmRequest, opts ...grpc.CallOption) (*models.TextResponse, error) {
	return invoke[models.TextResponse](ctx, c.cc, MethodFormatAlarm, in, opts)
}

func (c *FormatterClient) ImportAlarms(ctx context.Context, in *models.ImportAlarmsRequest, opts ...grpc.CallOption) (*models.ImportAlarmsResponse, error) {
	return invoke[models.ImportAlarmsResponse](ctx, c.cc, MethodImportAlarms, in, opts)
}

func (c *FormatterClient) UpdateSettings(ctx context.Context, in *models.UpdateSettingsRequest, opts ...grpc.CallOption) (*models.SettingsResponse, error) {
	return invoke[models.SettingsResponse](ctx, c.cc, MethodUpdateSettings, in, opts)
}

package handler

import (
	"context"

	"google.golang.org/grpc"

	"metargb/calendar-format/internal/models"
)

const ServiceName = "calendar.format.v1.FormatterService"

const (
	MethodFormatToken    = "/" + ServiceName + "/FormatToken"
	MethodFormatView     = "/" + ServiceName + "/FormatView"
	MethodFormatDate     = "/" + ServiceName + "/FormatDate"
	MethodFormatAlarm    = "/" + ServiceName + "/FormatAlarm"
	MethodImportAlarms   = "/" + ServiceName + "/ImportAlarms"
	MethodUpdateSettings = "/" + ServiceName + "/UpdateSettings"
)

// FormatterServer is the server API of the formatter service.
type FormatterServer interface {
	FormatToken(context.Context, *models.FormatTokenRequest) (*models.TextResponse, error)
	FormatView(context.Context, *models.FormatViewRequest) (*models.TextResponse, error)
	FormatDate(context.Context, *models.FormatDateRequest) (*models.TextResponse, error)
	FormatAlarm(context.Context, *models.FormatAlarmRequest) (*models.TextResponse, error)
	ImportAlarms(context.Context, *models.ImportAlarmsRequest) (*models.ImportAlarmsResponse, error)
	UpdateSettings(context.Context, *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

// RegisterFormatterServer registers srv on s.
func RegisterFormatterServer(s grpc.ServiceRegistrar, srv FormatterServer) {
	s.RegisterService(&FormatterServiceDesc, srv)
}

// unary adapts a typed method to a grpc.MethodDesc handler.
func unary[Req any, Resp any](method string, call func(FormatterServer, context.Context, *Req) (*Resp, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(FormatterServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(FormatterServer), ctx, req.(*Req))
		})
	}
}

var FormatterServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FormatterServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "FormatToken", Handler: unary(MethodFormatToken, FormatterServer.FormatToken)},
		{MethodName: "FormatView", Handler: unary(MethodFormatView, FormatterServer.FormatView)},
		{MethodName: "FormatDate", Handler: unary(MethodFormatDate, FormatterServer.FormatDate)},
		{MethodName: "FormatAlarm", Handler: unary(MethodFormatAlarm, FormatterServer.FormatAlarm)},
		{MethodName: "ImportAlarms", Handler: unary(MethodImportAlarms, FormatterServer.ImportAlarms)},
		{MethodName: "UpdateSettings", Handler: unary(MethodUpdateSettings, FormatterServer.UpdateSettings)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "calendar/format/v1/formatter.proto",
}

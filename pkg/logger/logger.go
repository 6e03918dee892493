package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"metargb/calendar-format/pkg/helpers"
)

// RequestIDHeader is the metadata key carrying the caller's request id
const RequestIDHeader = "x-request-id"

type ctxKey struct{}

// Logger wraps logrus logger
type Logger struct {
	*logrus.Logger
	service string
}

// NewLogger creates a JSON logger; level is one of debug, info, warn, error
func NewLogger(serviceName, level string) *Logger {
	return newLogger(serviceName, level, os.Stdout)
}

func newLogger(serviceName, level string, out io.Writer) *Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	log.SetOutput(out)

	switch strings.ToLower(level) {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	return &Logger{Logger: log, service: serviceName}
}

// Entry returns an entry carrying the service field
func (l *Logger) Entry() *logrus.Entry {
	return l.WithField("service", l.service)
}

// WithRequestID adds request ID to logger
func (l *Logger) WithRequestID(requestID string) *logrus.Entry {
	return l.Entry().WithField("request_id", requestID)
}

// RequestID returns the request id stored by the interceptor
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

func requestIDFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return helpers.NewRequestID()
	}
	values := md.Get(RequestIDHeader)
	if len(values) == 0 {
		return helpers.NewRequestID()
	}
	return helpers.RequestIDOrNew(values[0])
}

// UnaryServerInterceptor returns a new unary server interceptor for logging
func UnaryServerInterceptor(logger *Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		requestID := requestIDFromMetadata(ctx)
		ctx = context.WithValue(ctx, ctxKey{}, requestID)
		entry := logger.WithRequestID(requestID).WithField("method", info.FullMethod)
		if err := grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID)); err != nil {
			entry.WithError(err).Debug("Failed to set request id header")
		}
		entry.WithField("type", "unary").Info("gRPC request")

		resp, err := handler(ctx, req)

		if err != nil {
			entry.WithField("error", err.Error()).Error("gRPC request failed")
		} else {
			entry.Debug("gRPC request completed")
		}

		return resp, err
	}
}

// StreamServerInterceptor returns a new stream server interceptor for logging
func StreamServerInterceptor(logger *Logger) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		stream grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		entry := logger.WithRequestID(requestIDFromMetadata(stream.Context())).WithField("method", info.FullMethod)
		entry.WithField("type", "stream").Info("gRPC stream started")

		err := handler(srv, stream)

		if err != nil {
			entry.WithField("error", err.Error()).Error("gRPC stream failed")
		} else {
			entry.Debug("gRPC stream completed")
		}

		return err
	}
}

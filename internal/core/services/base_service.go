package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/wealth_tracker/internal/middleware"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("wealth_tracker/services")

// OperationRecorder counts ledger write operations and their outcome.
type OperationRecorder interface {
	RecordOperation(operation string, err error)
}

// BaseService provides common functionality for all services
type BaseService struct {
	Recorder OperationRecorder
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Record reports a write operation to the recorder, if one is configured.
func (s *BaseService) Record(operation string, err error) {
	if s.Recorder != nil {
		s.Recorder.RecordOperation(operation, err)
	}
}

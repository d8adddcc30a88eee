package triggers

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

// WithLogger attaches an invocation-scoped logger to ctx.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func (s *Service) log(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return s.logger
}

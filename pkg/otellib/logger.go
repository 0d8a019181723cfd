package otellib

import (
	"context"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type loggerCtxKey struct{}

type loggerCtxValue struct {
	logger *zap.Logger
}

const (
	traceIDField    = "trace.id"
	spanIDField     = "span.id"
	traceFlagsField = "trace.flags"

	// CampaignIDField names the campaign id in every log line about one campaign
	CampaignIDField = "campaign.id"
)

func fromContext(ctx context.Context) (*zap.Logger, bool) {
	val, ok := ctx.Value(loggerCtxKey{}).(loggerCtxValue)
	if !ok {
		return nil, false
	}
	return val.logger, true
}

// ToContext ...
func ToContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, loggerCtxValue{logger: l})
}

// WithFields returns a ctx whose logger always adds fields, ctx is returned as is without a logger
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	logger, ok := fromContext(ctx)
	if !ok {
		return ctx
	}
	return ToContext(ctx, logger.With(fields...))
}

// WithCampaign tags the logger in ctx with the campaign id
func WithCampaign(ctx context.Context, campaignID int64) context.Context {
	return WithFields(ctx, zap.Int64(CampaignIDField, campaignID))
}

// Extract returns the logger in ctx enriched with the current span, a nop logger when absent
func Extract(ctx context.Context) *zap.Logger {
	logger, ok := fromContext(ctx)
	if !ok {
		return zap.NewNop()
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return logger
	}
	return logger.With(
		zap.Stringer(traceIDField, sc.TraceID()),
		zap.Stringer(spanIDField, sc.SpanID()),
		zap.Stringer(traceFlagsField, sc.TraceFlags()),
	)
}

// WrapError logs err at the caller of the function that called WrapError
func WrapError(ctx context.Context, err error) {
	Extract(ctx).WithOptions(zap.AddCallerSkip(2)).Error("WrapError", zap.Error(err))
}

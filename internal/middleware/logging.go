package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its method, owner, duration and error code. Request and response
// messages that implement slog.LogValuer add their own fields, so a mark
// logs its settlement month and a payout logs its outcome.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			attrs := []slog.Attr{
				slog.String("method", methodName(procedure)),
				slog.String("owner_id", GetOwnerID(ctx)), // empty if pre-auth
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			if v, ok := req.Any().(slog.LogValuer); ok {
				attrs = append(attrs, slog.Any("request", v))
			}

			level := slog.LevelInfo
			msg := "RPC ok"
			var connectErr *connect.Error
			switch {
			case errors.As(err, &connectErr):
				level, msg = slog.LevelWarn, "RPC error"
				attrs = append(attrs,
					slog.String("code", connectErr.Code().String()),
					slog.String("error", connectErr.Message()),
				)
			case err != nil:
				level, msg = slog.LevelError, "RPC error"
				attrs = append(attrs, slog.Any("error", err))
			case resp != nil:
				if v, ok := resp.Any().(slog.LogValuer); ok {
					attrs = append(attrs, slog.Any("response", v))
				}
			}

			slog.LogAttrs(ctx, level, msg, attrs...)
			return resp, err
		}
	}
}

// methodName trims "/resiq.v1.SettlementService/MarkSettlement" to
// "MarkSettlement".
func methodName(procedure string) string {
	if i := strings.LastIndexByte(procedure, '/'); i >= 0 {
		return procedure[i+1:]
	}
	return procedure
}

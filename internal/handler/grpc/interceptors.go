package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (h *Handler) loggingUnaryInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	duration := time.Since(start)
	if err != nil {
		st, _ := status.FromError(err)
		h.logger.Error().
			Str("method", info.FullMethod).
			Dur("duration", duration).
			Str("grpc_code", st.Code().String()).
			Err(err).
			Msg("gRPC unary call failed")
		return resp, err
	}

	h.logger.Debug().
		Str("method", info.FullMethod).
		Dur("duration", duration).
		Msg("gRPC unary call completed")

	return resp, nil
}

func (h *Handler) recoveryUnaryInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().
				Str("method", info.FullMethod).
				Any("panic", r).
				Msg("gRPC unary call panic recovered")
			err = status.Error(codes.Internal, "internal server error")
		}
	}()

	return handler(ctx, req)
}

package grpc

import (
	"github.com/lastwords/last-words-api/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name under which the API reports its health over
// grpc.health.v1.
const ServiceName = "last-words"

// Handler is the root gRPC transport handler.
//
// It exposes the standard gRPC health service. The overall status ("") is
// SERVING while the process runs; the status of [ServiceName] follows the
// database probe and starts as NOT_SERVING until the first probe succeeds.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with a fresh health server.
func NewHandler(logger *logger.Logger) *Handler {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: healthServer,
		logger: logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// ServerOptions returns the interceptors every gRPC server of the API uses.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.recoveryUnaryInterceptor, h.loggingUnaryInterceptor),
	}
}

// SetServing publishes the outcome of a readiness check for [ServiceName].
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(ServiceName, status)
}

// Shutdown switches every service to NOT_SERVING so watchers see the
// server going away before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

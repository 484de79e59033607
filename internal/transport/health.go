package transport

import (
	"context"
	"net/http"
	"time"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const pingTimeout = 2 * time.Second

// HealthWatcher mirrors database reachability into a gRPC health server.
type HealthWatcher struct {
	pinger   Pinger
	server   *health.Server
	interval time.Duration
	logger   *zap.Logger
}

// NewHealthWatcher returns a HealthWatcher reporting into server.
func NewHealthWatcher(pinger Pinger, server *health.Server, interval time.Duration, logger *zap.Logger) *HealthWatcher {
	return &HealthWatcher{pinger: pinger, server: server, interval: interval, logger: logger}
}

// Run checks health every interval until ctx is done.
func (w *HealthWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.Check(ctx)
		select {
		case <-ctx.Done():
			w.server.Shutdown()
			return
		case <-ticker.C:
		}
	}
}

// Check pings the database once and updates the serving status.
func (w *HealthWatcher) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := w.pinger.Ping(pingCtx); err != nil {
		w.logger.Warn("database ping failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	w.server.SetServingStatus("", status)
	return status
}

// RegisterHealthRoute exposes the overall serving status at GET /v1/health.
func RegisterHealthRoute(mux *gwruntime.ServeMux, server *health.Server) error {
	return mux.HandlePath(http.MethodGet, "/v1/health", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		resp, err := server.Check(r.Context(), &healthpb.HealthCheckRequest{})
		if err != nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
			return
		}
		code := http.StatusOK
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]string{"status": resp.GetStatus().String()})
	})
}

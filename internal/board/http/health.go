package http

import (
	"net/http"
	"time"

	"github.com/pinwall/noticeboard/internal/board/store"
	"github.com/pinwall/noticeboard/pkg/httpx"
)

// HealthHandler reports service liveness plus a storage ping, so a
// half-alive process (serving but cut off from its database) shows up as
// degraded instead of OK.
func HealthHandler(startTime time.Time, version, env string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK
		if err := st.Ping(r.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, map[string]any{
			"status":      status,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"uptime":      time.Since(startTime).String(),
			"environment": env,
			"version":     version,
		})
	}
}

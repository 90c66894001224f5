package httpx

import "net/http"

// healthHandler answers liveness probes.
// GET /healthz.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

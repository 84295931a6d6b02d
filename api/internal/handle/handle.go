package handle

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"draw-guess/api/internal/vision"
	"draw-guess/api/internal/vision/types"
)

type Handle struct {
	engs       *vision.Engines
	timeout    time.Duration
	timeoutMax time.Duration
}

func New(engs *vision.Engines, timeout, timeoutMax time.Duration) *Handle {
	if timeoutMax < timeout {
		timeoutMax = timeout
	}
	return &Handle{
		engs:       engs,
		timeout:    timeout,
		timeoutMax: timeoutMax,
	}
}

// deadline honours X-Request-Timeout / ?timeoutSec=, never above timeoutMax.
func (h *Handle) deadline(r *http.Request) time.Duration {
	deadline := h.timeout
	if ts := r.Header.Get("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	} else if ts := r.URL.Query().Get("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	}
	if deadline > h.timeoutMax {
		deadline = h.timeoutMax
	}
	return deadline
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg, details string) {
	writeJSON(w, code, types.ErrorResponse{Error: msg, Details: details})
}

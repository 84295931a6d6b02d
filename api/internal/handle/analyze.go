package handle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"draw-guess/api/internal/vision"
	"draw-guess/api/internal/vision/types"
)

// a canvas PNG is well under this
const maxBodyBytes = 10 << 20

const (
	analyzeFailed = "Failed to analyze drawing via API proxy."
	unknownEngine = "Unknown llm_name; use 'gemini' or 'gpt'."
)

type AnalyzeRequest struct {
	LLMName string `json:"llm_name"`
	types.AnalyzeRequest
}

func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only", "")
		return
	}
	var req AnalyzeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.decodeError(w, r, err)
		return
	}

	engine, err := h.engs.GetEngine(req.LLMName)
	if err != nil {
		writeError(w, http.StatusBadRequest, unknownEngine, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.deadline(r))
	defer cancel()

	out, err := vision.Analyze(ctx, engine, req.AnalyzeRequest)
	if err != nil {
		h.analyzeError(w, r, engine, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// decodeError answers an unreadable body. A missing key on the default
// engine is still reported first, since llm_name could not be read.
func (h *Handle) decodeError(w http.ResponseWriter, r *http.Request, err error) {
	if def, gerr := h.engs.GetEngine(""); gerr == nil && !def.Configured() {
		h.analyzeError(w, r, def, fmt.Errorf("%s: %w", def.Name(), vision.ErrNotConfigured))
		return
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Request body is too large (limit %dMB).", tooLarge.Limit>>20), "")
		return
	}
	writeError(w, http.StatusBadRequest, "bad json: "+err.Error(), "")
}

func (h *Handle) analyzeError(w http.ResponseWriter, r *http.Request, engine vision.Engine, err error) {
	reqID := r.Header.Get(types.RequestIDHeader)

	var ae *vision.AnalysisError
	switch {
	case errors.Is(err, vision.ErrNotConfigured):
		log.Printf("analyze: [%s] %v", reqID, err)
		writeError(w, http.StatusInternalServerError,
			vision.DisplayName(engine.Name())+" API Key is not configured on the server.", "")
	case errors.Is(err, vision.ErrImageRequired):
		writeError(w, http.StatusBadRequest, "Image data is required.", "")
	case errors.Is(err, vision.ErrInvalidImage):
		writeError(w, http.StatusBadRequest, "Invalid image format.", "")
	case errors.Is(err, vision.ErrImageTooSmall):
		writeError(w, http.StatusBadRequest, "Image data is too small.", "")
	case errors.As(err, &ae):
		details := ae.Err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			details = "analysis timed out"
		}
		log.Printf("analyze: [%s] %s/%s failed: %v (image %s)", reqID, ae.Provider, engine.GetModel(), ae.Err, ae.SizeKB())
		writeError(w, http.StatusInternalServerError, analyzeFailed, fmt.Sprintf("%s (image %s)", details, ae.SizeKB()))
	default:
		log.Printf("analyze: [%s] unexpected error: %v", reqID, err)
		writeError(w, http.StatusInternalServerError, analyzeFailed, err.Error())
	}
}

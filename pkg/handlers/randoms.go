package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"perfilapp/pkg/randoms"
)

type RandomsHandler struct {
	Worker *randoms.Worker
	Logger *slog.Logger
}

func NewRandomsHandler(worker *randoms.Worker, logger *slog.Logger) *RandomsHandler {
	return &RandomsHandler{Worker: worker, Logger: logger}
}

// Randoms serves GET /api/randoms?cant=N with a JSON tally of N draws.
func (h *RandomsHandler) Randoms(w http.ResponseWriter, r *http.Request) {
	count := 0
	if cant := r.URL.Query().Get("cant"); cant != "" {
		parsed, err := strconv.Atoi(cant)
		if err != nil || parsed <= 0 {
			WriteResp(w, h.Logger, map[string]any{"error": "cant must be a positive number"}, http.StatusBadRequest)
			return
		}
		count = parsed
	}

	result, err := h.Worker.Tally(r.Context(), count)
	if err != nil {
		h.Logger.Error("randoms", "error", err.Error())
		WriteResp(w, h.Logger, map[string]any{"error": "worker unavailable"}, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.Logger.Error("failed to write randoms response", slog.Any("err", err))
	}
}

func WriteResp(w http.ResponseWriter, logger *slog.Logger, body map[string]any, status int) bool {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write JSON response", slog.Any("err", err))
		return false
	}
	return true
}

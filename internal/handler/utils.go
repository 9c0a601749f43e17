package handler

import (
	"net/http"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/pkg/httputils"
)

type PongResponse struct {
	Message string `json:"message"`
}

// Ping
// @Summary Ping the server
// @Description Liveness check
// @Tags system
// @Produce json
// @Success 200 {object} PongResponse
// @Router /api/ping [get]
func Ping(w http.ResponseWriter, r *http.Request) {
	httputils.ResponseJSON(w, http.StatusOK, PongResponse{Message: "Pong"})
}

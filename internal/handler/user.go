package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/pkg/httputils"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/repository"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/service"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userService service.UserService
	presence    service.Presence
}

func NewUserHandler(userService service.UserService, presence service.Presence) *UserHandler {
	return &UserHandler{userService: userService, presence: presence}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/login", h.login).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/users", h.listUsers).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/users/{username}/premium", h.getPremium).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/online", h.listOnline).Methods("GET", "OPTIONS")
}

type LoginRequest struct {
	Username string `json:"username"`
}

// @Summary Login
// @Description Fetch or create the user for a username. No password.
// @ID login
// @Accept json
// @Produce json
// @Success 200 {object} model.User
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Param loginData body LoginRequest true "Login data"
// @Router /api/login [post]
func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var request LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	r.Body.Close()

	user, err := h.userService.Login(request.Username)
	if err != nil {
		if errors.Is(err, service.ErrEmptyUsername) {
			httputils.ResponseError(w, http.StatusBadRequest, "Username is required")
			return
		}
		httputils.ResponseError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, user)
}

// @Summary List users
// @Description All registered users. Polled by clients to see who is around.
// @ID list-users
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} response.ErrorResponse
// @Router /api/users [get]
func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers()
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, users)
}

type PremiumResponse struct {
	Premium bool `json:"premium"`
}

// @Summary Premium status
// @Description Whether the user has unlocked the crown sticker.
// @ID get-premium
// @Produce json
// @Success 200 {object} PremiumResponse
// @Failure 404 {object} response.ErrorResponse
// @Param username path string true "Username"
// @Router /api/users/{username}/premium [get]
func (h *UserHandler) getPremium(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]

	premium, err := h.userService.PremiumStatus(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			httputils.ResponseError(w, http.StatusNotFound, "No such user")
			return
		}
		httputils.ResponseError(w, http.StatusInternalServerError, "Failed to get premium status")
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, PremiumResponse{Premium: premium})
}

type OnlineResponse struct {
	Online []string `json:"online"`
}

// @Summary Online users
// @Description Usernames with a live chat connection.
// @ID list-online
// @Produce json
// @Success 200 {object} OnlineResponse
// @Router /api/online [get]
func (h *UserHandler) listOnline(w http.ResponseWriter, r *http.Request) {
	online, err := h.presence.List(r.Context())
	if err != nil {
		// Presence is best-effort, an empty list beats an error page.
		online = []string{}
	}
	if online == nil {
		online = []string{}
	}

	httputils.ResponseJSON(w, http.StatusOK, OnlineResponse{Online: online})
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/gog-commerce/internal/user/domain"
	"github.com/tair/gog-commerce/internal/user/usecase/command"
	"github.com/tair/gog-commerce/internal/user/usecase/query"
	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/middleware"
	"github.com/tair/gog-commerce/pkg/response"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	// Command handlers
	registerHandler *command.RegisterUserHandler
	loginHandler    *command.LoginUserHandler
	profileHandler  *command.UpdateProfileHandler

	// Query handlers
	getUserHandler *query.GetUserHandler
	listHandler    *query.ListUsersHandler

	registrations prometheus.Counter
	logins        *prometheus.CounterVec
}

// NewUserHandler creates a new user handler and registers its collectors on reg
func NewUserHandler(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	profileHandler *command.UpdateProfileHandler,
	getUserHandler *query.GetUserHandler,
	listHandler *query.ListUsersHandler,
	reg prometheus.Registerer,
) *UserHandler {
	registrations := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "user_registrations_total",
			Help: "Total number of successful registrations",
		},
	)
	logins := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_logins_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)
	reg.MustRegister(registrations, logins)

	return &UserHandler{
		registerHandler: registerHandler,
		loginHandler:    loginHandler,
		profileHandler:  profileHandler,
		getUserHandler:  getUserHandler,
		listHandler:     listHandler,
		registrations:   registrations,
		logins:          logins,
	}
}

// RegisterRoutes registers the identity routes. Register and login go through limiter.
func (h *UserHandler) RegisterRoutes(router *mux.Router, authn *middleware.Authenticator, limiter *middleware.RateLimiter) {
	router.HandleFunc("/register", limiter.Limit(h.Register)).Methods(http.MethodPost)
	router.HandleFunc("/login", limiter.Limit(h.Login)).Methods(http.MethodPost)

	router.HandleFunc("/userData", authn.Authenticate(h.UserData)).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}", authn.Authenticate(h.GetUser)).Methods(http.MethodGet)
	router.HandleFunc("/editprofile/{id}", authn.Authenticate(h.EditProfile)).Methods(http.MethodPost)
	router.HandleFunc("/users", authn.RequireAdmin(h.ListUsers)).Methods(http.MethodGet)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register godoc
// @Summary Register a new user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body registerRequest true "Registration"
// @Success 201 {object} object{message=string,token=string}
// @Failure 400 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.registerHandler.Handle(r.Context(), command.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		response.FailureMessage(r.Context(), w, err, "Internal server error")
		return
	}

	h.registrations.Inc()
	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"token":   result.Token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Log in with email and password
// @Tags Users
// @Accept json
// @Produce json
// @Param request body loginRequest true "Credentials"
// @Success 200 {object} object{message=string,token=string,user=domain.User,isUser=bool,isSeller=bool,isAdmin=bool}
// @Failure 401 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.loginHandler.Handle(r.Context(), command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logins.WithLabelValues("failure").Inc()
		response.FailureMessage(r.Context(), w, err, "Internal server error")
		return
	}

	h.logins.WithLabelValues("success").Inc()
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message":  "login successful",
		"token":    result.Token,
		"user":     result.User,
		"isUser":   result.User.IsUser(),
		"isSeller": result.User.IsSeller(),
		"isAdmin":  result.User.IsAdmin(),
	})
}

// UserData godoc
// @Summary The user the bearer token belongs to
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{user=domain.User}
// @Failure 401 {object} object{message=string}
// @Failure 403 {object} object{message=string}
// @Router /api/userData [get]
func (h *UserHandler) UserData(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Message(w, http.StatusUnauthorized, "User data not found")
		return
	}

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: claims.UserID})
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			response.Message(w, http.StatusUnauthorized, "User data not found")
			return
		}
		response.FailureMessage(r.Context(), w, err, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// GetUser godoc
// @Summary Get a user profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} object{message=string}
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: uint(id)})
	if err != nil {
		response.FailureMessage(r.Context(), w, err, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, user)
}

type profileRequest struct {
	MobileNumber string `json:"mobileNumber"`
	Gender       string `json:"gender"`
	DOB          string `json:"dob"`
	Location     string `json:"location"`
}

// EditProfile godoc
// @Summary Edit a user's profile (owner or admin)
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body profileRequest true "Profile"
// @Success 200 {object} domain.User
// @Failure 403 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /api/editprofile/{id} [post]
func (h *UserHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims, _ := middleware.ClaimsFromContext(r.Context())
	user, err := h.profileHandler.Handle(r.Context(), command.UpdateProfileCommand{
		ActorID:   claims.UserID,
		ActorRole: claims.Role,
		UserID:    uint(id),
		Profile: domain.Profile{
			MobileNumber: req.MobileNumber,
			Gender:       req.Gender,
			DOB:          req.DOB,
			Location:     req.Location,
		},
	})
	if err != nil {
		response.FailureMessage(r.Context(), w, err, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, user)
}

// ListUsers godoc
// @Summary List users (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.User
// @Router /api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.listHandler.Handle(r.Context(), query.ListUsersQuery{})
	if err != nil {
		response.Failure(r.Context(), w, err, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, users)
}

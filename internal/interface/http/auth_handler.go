package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/warungkode/accounts-backend/internal/application"
	"github.com/warungkode/accounts-backend/pkg/response"
	"github.com/warungkode/accounts-backend/pkg/validation"
)

// AuthHandler exposes account registration and login. Both endpoints
// are stateless: success returns the profile, never a token or cookie.
type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Gender   string `json:"gender" binding:"required"`
}

// Login validates presence only; the shape of the email must not leak
// whether an account exists.
type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func view(name, email, gender string) *response.UserView {
	return &response.UserView{Name: name, Email: email, Gender: gender}
}

func bindMessage(err error) string {
	if validation.MissingFields(err) {
		return "missing fields"
	}
	return "invalid payload"
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, bindMessage(err), validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Gender:   req.Gender,
	})
	if err != nil {
		var verr *application.ValidationError
		switch {
		case errors.As(err, &verr):
			response.Error(c, http.StatusBadRequest, "invalid payload", verr.Fields)
		case errors.Is(err, application.ErrEmailTaken):
			response.Error(c, http.StatusConflict, "email already registered", nil)
		default:
			h.Logger.WithError(err).WithField("path", c.FullPath()).Error("registration failed")
			response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, "registration successful", view(u.Name, u.Email, u.Gender))
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, bindMessage(err), validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}

	response.Success(c, http.StatusOK, fmt.Sprintf("welcome back, %s", u.Name), view(u.Name, u.Email, u.Gender))
}

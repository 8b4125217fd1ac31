package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/warungkode/accounts-backend/config"
	"github.com/warungkode/accounts-backend/pkg/mailer"
	tpl "github.com/warungkode/accounts-backend/pkg/mailer/templates"
	"github.com/warungkode/accounts-backend/pkg/response"
	"github.com/warungkode/accounts-backend/pkg/validation"
)

// Publisher enqueues a JSON job for the email worker. Satisfied by
// helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ContactHandler relays contact-form submissions to the configured
// inbox through the email queue. It never touches the user store.
type ContactHandler struct {
	Pub    Publisher
	Logger *logrus.Logger
	Cfg    *config.Config
}

func NewContactHandler(pub Publisher, logger *logrus.Logger, cfg *config.Config) *ContactHandler {
	return &ContactHandler{Pub: pub, Logger: logger, Cfg: cfg}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Send handles POST /api/contact.
func (h *ContactHandler) Send(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, bindMessage(err), validation.ToDetails(err))
		return
	}

	if h.Cfg != nil && !h.Cfg.MailSendEnabled {
		// Accepted but intentionally not delivered.
		response.Success(c, http.StatusOK, "message received", nil)
		return
	}

	if h.Pub == nil {
		h.Logger.Warn("contact submission dropped: no queue configured")
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}

	job := mailer.EmailJob{
		To:       h.Cfg.ContactInbox,
		ReplyTo:  req.Email,
		Template: tpl.Contact,
		Data: tpl.ToMap(tpl.ContactData{
			AppName: h.Cfg.AppName,
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		}),
	}
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil {
		h.Logger.WithError(err).Error("failed to enqueue contact email")
		response.Error(c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}

	response.Success(c, http.StatusOK, "message sent", nil)
}

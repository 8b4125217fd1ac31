package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/warungkode/accounts-backend/internal/interface/http"
)

// ContactModule registers the contact-form relay.
// Public: POST /api/contact
type ContactModule struct {
	Handler *handlers.ContactHandler
}

func NewContactModule(h *handlers.ContactHandler) *ContactModule {
	return &ContactModule{Handler: h}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	rg.POST("/contact", m.Handler.Send)
}

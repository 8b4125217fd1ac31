package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/warungkode/accounts-backend/internal/interface/http"
)

// AccountModule registers the credential endpoints.
// Public: POST /api/register, POST /api/login
type AccountModule struct {
	Handler *handlers.AuthHandler
}

func NewAccountModule(h *handlers.AuthHandler) *AccountModule {
	return &AccountModule{Handler: h}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
}

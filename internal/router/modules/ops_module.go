package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"

	handlers "github.com/warungkode/accounts-backend/internal/interface/http"
)

// OpsModule registers the health probe and, when enabled, the expvar
// metrics endpoint.
type OpsModule struct {
	Handler   *handlers.OpsHandler
	DebugVars bool
}

func NewOpsModule(h *handlers.OpsHandler, debugVars bool) *OpsModule {
	return &OpsModule{Handler: h, DebugVars: debugVars}
}

func (m *OpsModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", m.Handler.Healthz)
	if m.DebugVars {
		rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
	}
}

package app

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tatyana-ilieva/lev-holdings/internal/handlers"
)

type Handlers struct {
	Status     *handlers.StatusHandler
	Webhook    *handlers.WebhookHandler
	Credential *handlers.CredentialHandler
	Token      *handlers.TokenHandler
	Reconcile  *handlers.ReconcileHandler
	Verify     *handlers.VerifyHandler
}

func (a *App) RegisterRoutes(h Handlers) {
	api := a.Router.Group("/api")
	api.GET("/check-verification-status", h.Status.GetStatus)
	api.POST("/check-verification-status", h.Status.SetStatus)
	api.POST("/sumsub-webhook", h.Webhook.Receive)
	api.POST("/mint-credential-nft", h.Credential.Mint)
	api.GET("/verify-credential", h.Credential.Lookup)
	api.POST("/create-sumsub-token", h.Token.CreateToken)
	api.POST("/verification/reconcile", h.Reconcile.Reconcile)
	api.GET("/verify", h.Verify.Health)
	api.POST("/verify", h.Verify.Verify)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/SrotDev/bizpilot/internal/auth/provider"
	"github.com/SrotDev/bizpilot/internal/logger"

	"github.com/gin-gonic/gin"
)

// callbackTimeout bounds the token exchange plus profile fetches for
// one callback request.
const callbackTimeout = 10 * time.Second

type Handler struct {
	providers    *provider.Registry
	clientAppURL string
}

func NewHandler(registry *provider.Registry, clientAppURL string) *Handler {
	return &Handler{
		providers:    registry,
		clientAppURL: clientAppURL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/auth/:provider", h.login)
	r.GET("/api/auth/:provider/callback", h.callback)
}

// login starts the authorization-code flow: it issues a state cookie
// and redirects the user agent to the provider's authorize page. No
// server-side record is created; calling it twice yields two
// independent redirects.
func (h *Handler) login(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "unknown oauth provider",
		})
		return
	}

	state := generateState(c)

	authURL, err := p.AuthCodeURL(state)
	if err != nil {
		logger.Error("authorize url build failed", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "provider not configured",
		})
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// callback completes the flow: exchange the code, fetch the profile,
// and relay the normalized identity to the client app as a URL-encoded
// JSON query parameter. Any upstream failure short-circuits to a 500
// text response; a partial payload is never redirected.
func (h *Handler) callback(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "unknown oauth provider",
		})
		return
	}

	if !validateState(c) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid state",
		})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": "no code",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), callbackTimeout)
	defer cancel()

	identity, err := p.ExchangeCode(ctx, code)
	if err != nil {
		logger.Error("oauth callback failed", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.String(http.StatusInternalServerError, "oauth failed")
		return
	}

	payload, err := json.Marshal(identity)
	if err != nil {
		logger.Error("identity marshal failed", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.String(http.StatusInternalServerError, "oauth failed")
		return
	}

	logger.Info("oauth completed", map[string]any{
		"provider": providerName,
	})

	redirect := h.clientAppURL + "/?oauth=" + url.QueryEscape(string(payload))
	c.Redirect(http.StatusFound, redirect)
}

package verify

import (
	"context"
	"net/http"
	"time"

	"github.com/SrotDev/bizpilot/internal/logger"

	"github.com/gin-gonic/gin"
)

const verifyTimeout = 10 * time.Second

type Handler struct {
	verifier *Verifier
}

func NewHandler(verifier *Verifier) *Handler {
	return &Handler{verifier: verifier}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/verify-recaptcha", h.verify)
}

func (h *Handler) verify(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}
	_ = c.ShouldBindJSON(&req)

	if req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": "no token",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), verifyTimeout)
	defer cancel()

	verdict, err := h.verifier.Verify(ctx, req.Token)
	if err != nil {
		logger.Error("recaptcha verification failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", verdict)
}

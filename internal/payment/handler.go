package payment

import (
	"context"
	"net/http"
	"time"

	"github.com/SrotDev/bizpilot/internal/logger"

	"github.com/gin-gonic/gin"
)

const createTimeout = 10 * time.Second

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/payments/sslcommerz/create", h.create)
}

type createRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Purpose  string  `json:"purpose"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	_ = c.ShouldBindJSON(&req)

	ctx, cancel := context.WithTimeout(c.Request.Context(), createTimeout)
	defer cancel()

	session, err := h.client.CreateSession(ctx, req.Amount, req.Currency)
	if err != nil {
		logger.Error("payment session create failed", map[string]any{
			"purpose": req.Purpose,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed"})
		return
	}

	c.JSON(http.StatusOK, session)
}

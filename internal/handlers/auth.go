package handlers

import (
	"errors"
	"net/http"

	"env_advisor/internal/service"

	"github.com/gin-gonic/gin"
)

// TokenRequest exchanges a device key for a bearer token.
type TokenRequest struct {
	DeviceID string `json:"deviceId" binding:"required" example:"balcony-node"`
	Key      string `json:"key" binding:"required" example:"s3cret"`
}

// @Summary      Issue device token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      TokenRequest  true  "device credentials"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /auth/token [post]
func (h *Handler) issueToken(c *gin.Context) {
	if !h.authEnabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "device auth is disabled"})
		return
	}

	var input TokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.services.GenerateToken(input.DeviceID, input.Key)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_token_denied", "device_id", input.DeviceID, "err", err)
		}
		if errors.Is(err, service.ErrUnknownDevice) || errors.Is(err, service.ErrInvalidKey) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.logAndInternalError(c, "auth_token_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) authEnabled() bool {
	return h.services != nil && h.services.Authorization != nil && h.services.Enabled()
}

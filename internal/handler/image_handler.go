package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkbound-server/internal/models"
)

func (h *Handler) generateImage(c *gin.Context) {
	prompt, ok := rawQueryValue(c.Request.URL.RawQuery, "prompt")
	if !ok {
		h.handleServiceError(c, missingParam("prompt"))
		return
	}

	imageURLsBuiltTotal.Inc()
	c.PureJSON(http.StatusOK, models.ImageResponse{URL: h.images.BuildURL(prompt)})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkbound-server/internal/service"
)

func (h *Handler) chatHandler(c *gin.Context) {
	query, err := requireQuery(c, "query")
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	genre, err := requireQuery(c, "genre")
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	reply, err := h.chat.Chat(c.Request.Context(), service.ChatRequest{
		Query:     query,
		Genre:     genre,
		Character: c.Query("character"),
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.PureJSON(http.StatusOK, reply)
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inkbound-server/internal/models"
)

func (h *Handler) saveCharacter(c *gin.Context) {
	name, err := requireQuery(c, "name")
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	description, err := requireQuery(c, "description")
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if err := h.characters.Append(models.Character{Name: name, Description: description}); err != nil {
		h.logger.Error("Failed to save character", zap.String("name", name), zap.Error(err))
		h.handleServiceError(c, err)
		return
	}

	charactersSavedTotal.Inc()
	c.PureJSON(http.StatusOK, fmt.Sprintf("Character '%s' saved successfully.", name))
}

func (h *Handler) getCharacters(c *gin.Context) {
	characters := h.characters.List()
	if characters == nil {
		characters = []models.Character{}
	}
	c.PureJSON(http.StatusOK, characters)
}

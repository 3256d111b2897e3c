package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inkbound-server/internal/config"
	"inkbound-server/internal/models"
	"inkbound-server/internal/service"
	"inkbound-server/internal/store"
)

const (
	serviceStatus  = "Inkbound AI Backend is Online"
	serviceVersion = "2.0"
)

// Handler обслуживает публичные GET-эндпоинты бэкенда.
type Handler struct {
	chat       service.ChatService
	images     *service.ImageService
	characters store.CharacterRepository
	softErrors bool
	logger     *zap.Logger
}

// NewHandler создает Handler.
func NewHandler(
	cfg *config.Config,
	chat service.ChatService,
	images *service.ImageService,
	characters store.CharacterRepository,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		chat:       chat,
		images:     images,
		characters: characters,
		softErrors: cfg.SoftErrors,
		logger:     logger.Named("Handler"),
	}
}

// RegisterRoutes регистрирует маршруты.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.home)
	router.GET("/chat", h.chatHandler)
	router.GET("/save_character", h.saveCharacter)
	router.GET("/generate_image", h.generateImage)
	router.GET("/get_characters", h.getCharacters)
}

func (h *Handler) home(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Status: serviceStatus, Version: serviceVersion})
}

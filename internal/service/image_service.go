package service

import (
	"fmt"
	"net/url"
	"strings"

	"inkbound-server/internal/config"
)

// ImageService строит URL картинки для внешнего генератора. Сетевых вызовов не делает.
type ImageService struct {
	baseURL     string
	width       int
	height      int
	noLogo      bool
	styleSuffix string
}

// NewImageService создает ImageService из конфигурации.
func NewImageService(cfg *config.Config) *ImageService {
	base := cfg.ImageBaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &ImageService{
		baseURL:     base,
		width:       cfg.ImageWidth,
		height:      cfg.ImageHeight,
		noLogo:      cfg.ImageNoLogo,
		styleSuffix: cfg.ImagePromptStyleSuffix,
	}
}

// BuildURL подставляет prompt в шаблон как есть, без экранирования.
// Суффикс стиля из конфигурации экранируется как сегмент пути.
func (s *ImageService) BuildURL(prompt string) string {
	var sb strings.Builder
	sb.WriteString(s.baseURL)
	sb.WriteString(prompt)
	if s.styleSuffix != "" {
		sb.WriteString(url.PathEscape(s.styleSuffix))
	}
	sb.WriteString(fmt.Sprintf("?width=%d&height=%d", s.width, s.height))
	if s.noLogo {
		sb.WriteString("&nologo=true")
	}
	return sb.String()
}

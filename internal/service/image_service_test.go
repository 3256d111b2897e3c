package service_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"inkbound-server/internal/config"
	"inkbound-server/internal/service"
)

func imageConfig() *config.Config {
	return &config.Config{
		ImageBaseURL: "https://image.pollinations.ai/prompt/",
		ImageWidth:   1024,
		ImageHeight:  1024,
		ImageNoLogo:  true,
	}
}

func TestImageService_BuildURL(t *testing.T) {
	svc := service.NewImageService(imageConfig())

	tests := []struct {
		prompt string
		want   string
	}{
		{"a+cat", "https://image.pollinations.ai/prompt/a+cat?width=1024&height=1024&nologo=true"},
		{"castle%20at%20dusk", "https://image.pollinations.ai/prompt/castle%20at%20dusk?width=1024&height=1024&nologo=true"},
		{"", "https://image.pollinations.ai/prompt/?width=1024&height=1024&nologo=true"},
	}
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.BuildURL(tt.prompt))
		})
	}
}

func TestImageService_Options(t *testing.T) {
	cfg := imageConfig()
	cfg.ImageBaseURL = "https://images.example.com/p"
	cfg.ImageWidth = 512
	cfg.ImageHeight = 768
	cfg.ImageNoLogo = false
	cfg.ImagePromptStyleSuffix = ", oil painting"

	svc := service.NewImageService(cfg)
	assert.Equal(t, "https://images.example.com/p/ship%2C%20oil%20painting?width=512&height=768", svc.BuildURL("ship"))
}

func TestImageService_NoNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	cfg := imageConfig()
	cfg.ImageBaseURL = srv.URL + "/prompt/"
	_ = service.NewImageService(cfg).BuildURL("a+cat")

	assert.False(t, called)
}

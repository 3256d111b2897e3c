package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	charactersSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkbound_characters_saved_total",
		Help: "Total number of successfully saved characters.",
	})

	imageURLsBuiltTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkbound_image_urls_built_total",
		Help: "Total number of generated image URLs.",
	})

	chatFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inkbound_chat_failures_total",
			Help: "Total number of failed chat requests by failure kind.",
		},
		[]string{"kind"},
	)
)

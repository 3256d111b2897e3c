package models

// ErrorResponse - стандартная структура для ответа об ошибке в формате JSON.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse - ответ корневого эндпоинта.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ImageResponse - ответ /generate_image.
type ImageResponse struct {
	URL string `json:"url"`
}

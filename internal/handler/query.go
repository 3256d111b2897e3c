package handler

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"inkbound-server/internal/models"
)

func missingParam(name string) error {
	return fmt.Errorf("%w: missing required query parameter '%s'", models.ErrBadRequest, name)
}

// requireQuery возвращает декодированное значение обязательного параметра.
// Пустое значение допустимо, проверяется только наличие.
func requireQuery(c *gin.Context, name string) (string, error) {
	value, ok := c.GetQuery(name)
	if !ok {
		return "", missingParam(name)
	}
	return value, nil
}

// rawQueryValue возвращает значение параметра ровно в том виде, в каком оно пришло
// в строке запроса, без декодирования '+' и %-последовательностей.
func rawQueryValue(rawQuery, name string) (string, bool) {
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if key == name {
			return value, true
		}
	}
	return "", false
}

package delivery

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"storefront/internal/domain"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// mapErrorToStatus maps catalog load failures onto gateway statuses.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}
	return http.StatusBadGateway
}

// criteriaQuery encodes the non-empty catalog controls so a redirect lands
// on the same filtered view.
func criteriaQuery(c usecase.Criteria) string {
	v := url.Values{}
	for key, val := range map[string]string{
		"category":     c.Category,
		"availability": c.Availability,
		"price":        c.Price,
		"sort":         c.Sort,
		"q":            c.Search,
	} {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v.Encode()
}

func storefrontURL(c usecase.Criteria) string {
	if q := criteriaQuery(c); q != "" {
		return "/?" + q
	}
	return "/"
}

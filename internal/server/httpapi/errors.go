package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/tweetstats/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type errorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

func fail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Title:  http.StatusText(status),
		Detail: detail,
		Status: status,
	})
}

// failErr maps service errors to responses.
func (h *Handler) failErr(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &ve):
		first := ve[0]
		fail(c, http.StatusBadRequest, fmt.Sprintf("field [%s] failed rule [%s]", first.Field(), first.Tag()))
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		fail(c, http.StatusNotFound, err.Error())
	default:
		h.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		fail(c, http.StatusInternalServerError, common.ErrorInternal.Error())
	}
}

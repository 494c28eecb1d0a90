package entries

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"github.com/ribgsilva/encyclopedia/platform/web/handler"
	"net/http"
)

// List godoc
// @Summary List entries
// @Description List the titles of every entry
// @Tags Entry
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} handler.Error
// @Router /v1/entries [get]
func (a API) List(ctx *gin.Context) handler.Result {
	titles, err := entry.List(ctx.Request.Context(), a.Entries)
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   titles,
	}
}

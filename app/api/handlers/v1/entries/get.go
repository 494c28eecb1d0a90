package entries

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"github.com/ribgsilva/encyclopedia/business/v1/markup"
	"github.com/ribgsilva/encyclopedia/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Find an entry
// @Description Find an entry using its title, case-sensitive
// @Tags Entry
// @Produce json
// @Param title path string true "Entry title"
// @Success 200 {object} entries.Entry
// @Failure 404 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/entries/{title} [get]
func (a API) Get(ctx *gin.Context) handler.Result {
	rCtx := ctx.Request.Context()

	e, err := entry.Find(rCtx, a.Entries, ctx.Param("title"))
	switch {
	case errors.Is(err, entry.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: "entry not found"},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   Entry{Entry: e, HTML: string(markup.Render(rCtx, e.Content))},
		}
	}
}

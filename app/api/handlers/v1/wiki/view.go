package wiki

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"github.com/ribgsilva/encyclopedia/business/v1/markup"
	"github.com/ribgsilva/encyclopedia/platform/web/handler"
	"net/http"
)

// View renders the entry named by the path
func (w Wiki) View(ctx *gin.Context) handler.Result {
	rCtx := ctx.Request.Context()

	e, err := entry.Find(rCtx, w.Entries, ctx.Param("title"))
	switch {
	case errors.Is(err, entry.ErrNotFound):
		return Error(http.StatusNotFound, "Page not found.")
	case err != nil:
		return failure(ctx, err)
	}

	return handler.Result{
		Status:   http.StatusOK,
		Template: "entry.html",
		Body: EntryPage{
			Entry: e.Title,
			HTML:  markup.Render(rCtx, e.Content),
		},
	}
}

// ViewSubmit is the Edit button of the entry page
func (w Wiki) ViewSubmit(ctx *gin.Context) handler.Result {
	return handler.Redirect(editURL(ctx.Param("title")))
}

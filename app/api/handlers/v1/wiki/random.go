package wiki

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"github.com/ribgsilva/encyclopedia/platform/web/handler"
	"net/http"
)

// Random redirects to a random entry
func (w Wiki) Random(ctx *gin.Context) handler.Result {
	title, err := entry.Random(ctx.Request.Context(), w.Entries, w.Rand)
	switch {
	case errors.Is(err, entry.ErrNoEntries):
		return Error(http.StatusNotFound, "No entries yet.")
	case err != nil:
		return failure(ctx, err)
	}
	return handler.Redirect(viewURL(title))
}

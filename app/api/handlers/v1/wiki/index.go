package wiki

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"github.com/ribgsilva/encyclopedia/platform/web/handler"
	"net/http"
)

// Index lists every entry
func (w Wiki) Index(ctx *gin.Context) handler.Result {
	titles, err := entry.List(ctx.Request.Context(), w.Entries)
	if err != nil {
		return failure(ctx, err)
	}
	return handler.Result{
		Status:   http.StatusOK,
		Template: "index.html",
		Body:     IndexPage{Entries: titles},
	}
}

// Package wiki holds the html handlers of the encyclopedia: one per page, each returning a
// handler.Result that renders a template, redirects, or renders the error page.
package wiki

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"github.com/ribgsilva/encyclopedia/platform/web/handler"
	"github.com/ribgsilva/encyclopedia/sys"
	"net/http"
	"net/url"
)

// Wiki carries what the handlers depend on
type Wiki struct {
	Entries entry.Store
	Rand    entry.Rand
}

// Error renders the error page. It has no route of its own.
func Error(status int, message string) handler.Result {
	return handler.Result{
		Status:   status,
		Template: "error.html",
		Body:     ErrorPage{Message: message},
	}
}

func failure(ctx *gin.Context, err error) handler.Result {
	sys.R.Log.Errorw("request", "method", ctx.Request.Method, "path", ctx.Request.URL.Path, "ERROR", err)
	return Error(http.StatusInternalServerError, "Something went wrong.")
}

func viewURL(title string) string {
	return "/wiki/" + url.PathEscape(title)
}

func editURL(title string) string {
	return "/edit?title=" + url.QueryEscape(title)
}

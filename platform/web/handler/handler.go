package handler

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// Result is what every handler returns. Exactly one of the following is written:
// a redirect when Location is set, an HTML page when Template is set, the status alone
// when Body is nil, or Body encoded as JSON.
type Result struct {
	Status   int
	Body     any
	Template string
	Location string
}

// Error is the JSON body of a failed request
type Error struct {
	Message string `json:"message" example:"entry not found"`
}

// Func is a handler returning a Result
type Func func(ctx *gin.Context) Result

// Wrapper adapts a Func into a gin.HandlerFunc
func Wrapper(f Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := f(ctx)
		switch {
		case r.Location != "":
			status := r.Status
			if status == 0 {
				status = http.StatusFound
			}
			ctx.Redirect(status, r.Location)
		case r.Template != "":
			ctx.HTML(r.Status, r.Template, r.Body)
		case r.Body == nil:
			ctx.Status(r.Status)
		default:
			ctx.JSON(r.Status, r.Body)
		}
	}
}

// Redirect builds a 302 Result to location
func Redirect(location string) Result {
	return Result{Status: http.StatusFound, Location: location}
}

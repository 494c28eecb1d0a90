package wiki

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"github.com/ribgsilva/encyclopedia/platform/web/handler"
	"net/http"
)

// NewForm renders the empty creation form
func (w Wiki) NewForm(_ *gin.Context) handler.Result {
	return handler.Result{
		Status:   http.StatusOK,
		Template: "new.html",
		Body:     NewPage{},
	}
}

// New creates the submitted entry, refusing titles already taken
func (w Wiki) New(ctx *gin.Context) handler.Result {
	var req entry.NewEntryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		return invalidNew(req, entry.ValidationErrors{"title": "Invalid form."})
	}

	req, err := entry.ValidateNewEntry(req)
	var invalid entry.ValidationErrors
	if errors.As(err, &invalid) {
		return invalidNew(req, invalid)
	}

	err = entry.Create(ctx.Request.Context(), w.Entries, req)
	switch {
	case errors.Is(err, entry.ErrDuplicateTitle):
		return Error(http.StatusConflict, "Page with same title already exists.")
	case err != nil:
		return failure(ctx, err)
	}

	return handler.Redirect(viewURL(req.Title))
}

func invalidNew(req entry.NewEntryRequest, errs entry.ValidationErrors) handler.Result {
	return handler.Result{
		Status:   http.StatusBadRequest,
		Template: "new.html",
		Body:     NewPage{Form: req, Errors: errs},
	}
}

package wiki

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"github.com/ribgsilva/encyclopedia/platform/web/handler"
	"net/http"
)

// EditForm renders the edit form of ?title=, prefilled with its content. An absent entry
// gets an empty form, saving it creates the entry.
func (w Wiki) EditForm(ctx *gin.Context) handler.Result {
	title := ctx.Query("title")

	e, err := entry.Find(ctx.Request.Context(), w.Entries, title)
	if err != nil && !errors.Is(err, entry.ErrNotFound) {
		return failure(ctx, err)
	}

	return handler.Result{
		Status:   http.StatusOK,
		Template: "edit.html",
		Body: EditPage{
			Form: entry.EditEntryRequest{Title: title, Content: e.Content},
		},
	}
}

// Edit overwrites the entry with the submitted content
func (w Wiki) Edit(ctx *gin.Context) handler.Result {
	var req entry.EditEntryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		return invalidEdit(req, entry.ValidationErrors{"content": "Invalid form."})
	}

	req, err := entry.ValidateEditEntry(req)
	var invalid entry.ValidationErrors
	if errors.As(err, &invalid) {
		return invalidEdit(req, invalid)
	}

	if err := entry.Save(ctx.Request.Context(), w.Entries, req); err != nil {
		return failure(ctx, err)
	}

	return handler.Redirect(viewURL(req.Title))
}

func invalidEdit(req entry.EditEntryRequest, errs entry.ValidationErrors) handler.Result {
	return handler.Result{
		Status:   http.StatusBadRequest,
		Template: "edit.html",
		Body:     EditPage{Form: req, Errors: errs},
	}
}

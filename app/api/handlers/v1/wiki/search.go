package wiki

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"github.com/ribgsilva/encyclopedia/platform/web/handler"
	"net/http"
	"strings"
)

// SearchForm renders the empty search form. Links carrying ?search_term= are resolved directly.
func (w Wiki) SearchForm(ctx *gin.Context) handler.Result {
	if term := ctx.Query("search_term"); strings.TrimSpace(term) != "" {
		return w.search(ctx, entry.SearchRequest{Query: term})
	}
	return handler.Result{
		Status:   http.StatusOK,
		Template: "search.html",
		Body:     SearchPage{},
	}
}

// Search resolves the submitted search: an exact title redirects to it, anything else lists
// the titles containing the query
func (w Wiki) Search(ctx *gin.Context) handler.Result {
	var req entry.SearchRequest
	if err := ctx.ShouldBind(&req); err != nil {
		return handler.Result{
			Status:   http.StatusBadRequest,
			Template: "search.html",
			Body:     SearchPage{Errors: entry.ValidationErrors{"search": "Invalid form."}},
		}
	}
	return w.search(ctx, req)
}

func (w Wiki) search(ctx *gin.Context, req entry.SearchRequest) handler.Result {
	req, err := entry.ValidateSearch(req)
	var invalid entry.ValidationErrors
	if errors.As(err, &invalid) {
		return handler.Result{
			Status:   http.StatusBadRequest,
			Template: "search.html",
			Body:     SearchPage{Errors: invalid},
		}
	}

	res, err := entry.Search(ctx.Request.Context(), w.Entries, req.Query)
	if err != nil {
		return failure(ctx, err)
	}
	if res.Redirect != "" {
		return handler.Redirect(viewURL(res.Redirect))
	}

	return handler.Result{
		Status:   http.StatusOK,
		Template: "search.html",
		Body: SearchPage{
			Page:      Page{Search: req.Query},
			Query:     req.Query,
			Searched:  true,
			Entries:   res.Matches,
			NoResults: res.NoResults,
		},
	}
}

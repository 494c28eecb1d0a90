package entries

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"github.com/ribgsilva/encyclopedia/platform/web/handler"
	"net/http"
)

// Search godoc
// @Summary Search entries
// @Description An exact title match returns it as redirect, otherwise every title containing q is listed
// @Tags Entry
// @Produce json
// @Param q query string true "Query, case-sensitive"
// @Success 200 {object} entry.SearchResult
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/search [get]
func (a API) Search(ctx *gin.Context) handler.Result {
	req, err := entry.ValidateSearch(entry.SearchRequest{Query: ctx.Query("q")})
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "missing query"},
		}
	}

	res, err := entry.Search(ctx.Request.Context(), a.Entries, req.Query)
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}
	return handler.Result{
		Status: http.StatusOK,
		Body:   res,
	}
}

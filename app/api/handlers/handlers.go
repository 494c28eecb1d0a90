package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/encyclopedia/app/api/handlers/v1/entries"
	"github.com/ribgsilva/encyclopedia/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/encyclopedia/app/api/handlers/v1/wiki"
	"github.com/ribgsilva/encyclopedia/app/api/web"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"github.com/ribgsilva/encyclopedia/platform/web/handler"
	"net/http"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, store entry.Store) {
	a := entries.API{Entries: store}
	r.GET("/v1/entries", handler.Wrapper(a.List))
	r.GET("/v1/entries/:title", handler.Wrapper(a.Get))
	r.GET("/v1/search", handler.Wrapper(a.Search))
}

// MapWiki maps the html pages. The engine needs an HTMLRender holding the web templates.
func MapWiki(r *gin.Engine, w wiki.Wiki) {
	r.StaticFS("/static", http.FS(web.Static))

	r.GET("/", handler.Wrapper(w.Index))
	r.GET("/wiki/:title", handler.Wrapper(w.View))
	r.POST("/wiki/:title", handler.Wrapper(w.ViewSubmit))
	r.GET("/search", handler.Wrapper(w.SearchForm))
	r.POST("/search", handler.Wrapper(w.Search))
	r.GET("/new", handler.Wrapper(w.NewForm))
	r.POST("/new", handler.Wrapper(w.New))
	r.GET("/random", handler.Wrapper(w.Random))
	r.GET("/edit", handler.Wrapper(w.EditForm))
	r.POST("/edit", handler.Wrapper(w.Edit))
}

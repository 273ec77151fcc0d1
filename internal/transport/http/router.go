package httpserver

import (
	_ "embed"
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/labstack/echo/v4"
)

//go:embed graphiql.html
var graphiqlPage []byte

type Deps struct {
	Schema *graphql.Schema
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	h := &relay.Handler{Schema: d.Schema}
	e.POST("/graphql", echo.WrapHandler(h), BearerToContext())
	e.GET("/graphql", func(c echo.Context) error {
		return c.HTMLBlob(http.StatusOK, graphiqlPage)
	})
}

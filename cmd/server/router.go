package main

import (
	"net/http"

	"github.com/azmath1924/go-rest-starter/internal/api"
)

// setupRouter wires the HTTP surface over the application's services.
func (app *application) setupRouter() http.Handler {
	return api.NewRouter(app.userService, app.config.Server, app.logger)
}

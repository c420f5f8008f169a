// @title           My Task App API
// @version         1.0
// @description     Task management backend with email-verified accounts (Swagger documentation).
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

package main

import (
	"taskhub_backend/internal/app"

	_ "taskhub_backend/docs"
)

func main() {
	app.Run()
}

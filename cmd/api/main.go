package main

import (
	_ "auxilio_propg/docs"
	"auxilio_propg/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Auxílio PROPG API
// @version         1.0
// @description     Lifecycle service for graduate financial-aid requests: status transitions, notifications and audit log.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}

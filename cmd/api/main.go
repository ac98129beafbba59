package main

import (
	_ "eolia_backend/docs"
	"eolia_backend/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Eolia Backend API
// @version         1.0
// @description     Wind turbine storefront backend: checkout, payments and post-purchase dossier tracking backed by DynamoDB and S3.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey SubjectId
// @in header
// @name X-Subject-Id
// @description Subject id forwarded by the identity gateway.

func main() {
	routes.Run()
}

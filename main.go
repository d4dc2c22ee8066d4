package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/pointspace/pointspace-api/cmd/app"
)

// @title           Pointspace API
// @description     Space-scoped student attendance and points tracking for admins.
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @BasePath  /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}

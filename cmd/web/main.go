package main

import (
	"github.com/joho/godotenv"

	"jobboard_backend/internal/app"
)

func main() {
	// Optional .env; real deployments set the environment directly.
	_ = godotenv.Load()

	app.Run()
}

package main

import (
	"log"

	"membrostotal_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
	app.Run()
}

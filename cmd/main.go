package main

import (
	"log"

	"github.com/joho/godotenv"

	"repaircenter/internal/app"
)

func main() {
	// optional .env for local runs, real deployments set the environment
	godotenv.Load()

	app, err := app.NewApp()
	if err != nil {
		log.Fatal(err)
	}

	app.Run()
}

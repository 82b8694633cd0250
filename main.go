package main

import (
	"github.com/joho/godotenv"

	"eccli/cmd"
)

func main() {
	// optional .env file
	_ = godotenv.Load()

	cmd.Execute()
}

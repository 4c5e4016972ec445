package main

import (
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/bnb-bot-discord/cmd/bnbctl/cmd"
)

func main() {
	_ = godotenv.Load()

	cmd.Execute()
}

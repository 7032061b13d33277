package main

import (
	"os"

	_ "weather-ai-bot/docs" // Swagger docs
)

// @title       Weather + AI Bot API
// @description Single-turn chat router answering date, weather and general knowledge questions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

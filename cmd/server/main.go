package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/yourorg/todokeeper/internal/server"
	"github.com/yourorg/todokeeper/internal/server/config"
)

func main() {

	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}

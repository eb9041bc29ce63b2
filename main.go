package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/delcom/angkasa-api/config"
	"github.com/delcom/angkasa-api/http/controller"
	routes "github.com/delcom/angkasa-api/http/route"
	infraPkg "github.com/delcom/angkasa-api/infra"
	"github.com/delcom/angkasa-api/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	defer infra.Logger.Shutdown(context.Background())

	repo := repository.InitRepository(infra)

	ctrl := controller.NewController(cfg, infra, repo)

	router := routes.SetupRouter(ctrl)

	addr := ":" + cfg.EnvConfig.Server.Port
	log.Println("HTTP Server started on " + addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"log"
	"os"

	"github.com/benbeisheim/chessmodel/internal/config"
	"github.com/benbeisheim/chessmodel/internal/controller"
	"github.com/benbeisheim/chessmodel/internal/service"
)

func main() {
	cfg, err := config.Load("server", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	closeLog, err := config.InitLog(cfg.LogPath, cfg.LogPrefix)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)
	app := controller.NewApp(gameService, cfg)

	log.Printf("HTTP listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

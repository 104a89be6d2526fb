package main

import (
	"log"
	"os"

	"github.com/benbeisheim/chessmodel/internal/config"
	"github.com/benbeisheim/chessmodel/internal/fen"
	"github.com/benbeisheim/chessmodel/internal/model"
	"github.com/benbeisheim/chessmodel/internal/textboard"
)

func main() {
	cfg, err := config.Load("selfplay", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	closeLog, err := config.InitLog(cfg.LogPath, cfg.LogPrefix)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	g := model.NewGame()
	if cfg.FEN != "" {
		if g, err = fen.Decode(cfg.FEN); err != nil {
			log.Fatal(err)
		}
	}

	played, err := textboard.SelfPlay(os.Stdout, g, cfg.Plies, textboard.New(cfg.NoColor))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("selfplay finished after %d plies: %s", played, textboard.Status(g))
}

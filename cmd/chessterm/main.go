package main

import (
	"log"
	"os"

	"github.com/benbeisheim/chessmodel/internal/config"
	"github.com/benbeisheim/chessmodel/internal/fen"
	"github.com/benbeisheim/chessmodel/internal/model"
	"github.com/benbeisheim/chessmodel/internal/tui"
)

func main() {
	cfg, err := config.Load("chessterm", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	// stderr is the UI's terminal.
	logPath := cfg.LogPath
	if logPath == "" {
		logPath = os.DevNull
	}
	closeLog, err := config.InitLog(logPath, "CHESSTERM: ")
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	computer, err := cfg.ComputerSide()
	if err != nil {
		log.Fatal(err)
	}
	g := model.NewGame()
	if cfg.FEN != "" {
		if g, err = fen.Decode(cfg.FEN); err != nil {
			log.Fatal(err)
		}
	}

	if err := tui.Run(g, computer); err != nil {
		log.Fatal(err)
	}
}

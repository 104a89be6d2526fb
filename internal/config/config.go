// Package config reads command-line flags with environment fallbacks.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/benbeisheim/chessmodel/internal/model"
)

type Config struct {
	Addr      string
	Origins   string
	LogPath   string
	LogPrefix string
	Computer  string
	FEN       string
	Plies     int
	NoColor   bool
}

// Load parses args (without the program name) into a Config. Every flag
// defaults to its CHESS_* environment variable when set.
func Load(name string, args []string) (Config, error) {
	var c Config
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&c.Addr, "addr", getenv("CHESS_ADDR", ":3000"), "listen address")
	fs.StringVar(&c.Origins, "origins", getenv("CHESS_ORIGINS", "http://localhost:5173"), "comma-separated CORS origins")
	fs.StringVar(&c.LogPath, "log", getenv("CHESS_LOG", ""), "path to log file (default stderr)")
	fs.StringVar(&c.LogPrefix, "log-prefix", getenv("CHESS_LOG_PREFIX", ""), "log line prefix")
	fs.StringVar(&c.Computer, "computer", getenv("CHESS_COMPUTER", ""), "side played by the computer: white or black")
	fs.StringVar(&c.FEN, "fen", getenv("CHESS_FEN", ""), "starting position in FEN")
	fs.IntVar(&c.Plies, "plies", getenvi("CHESS_PLIES", 200), "maximum plies for self-play")
	fs.BoolVar(&c.NoColor, "no-color", getenb("CHESS_NO_COLOR", false), "disable ANSI colors")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if _, err := c.ComputerSide(); err != nil {
		return Config{}, err
	}
	if c.Plies < 0 {
		return Config{}, fmt.Errorf("plies must not be negative, got %d", c.Plies)
	}
	return c, nil
}

// ComputerSide returns the configured computer side, or nil for none.
func (c Config) ComputerSide() (*model.Player, error) {
	if strings.TrimSpace(c.Computer) == "" {
		return nil, nil
	}
	p, err := model.ParsePlayer(c.Computer)
	if err != nil {
		return nil, fmt.Errorf("computer: %w", err)
	}
	return &p, nil
}

// OriginList splits Origins on commas.
func (c Config) OriginList() []string {
	var out []string
	for _, o := range strings.Split(c.Origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// InitLog sends the standard logger to dest with the given prefix. An empty
// dest keeps the current output. The returned func closes the file.
func InitLog(dest, prefix string) (func() error, error) {
	log.SetPrefix(prefix)
	if dest == "" {
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	log.SetOutput(f)
	return f.Close, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func getenvi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

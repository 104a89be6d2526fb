package config

import (
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/benbeisheim/chessmodel/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"CHESS_ADDR", "CHESS_ORIGINS", "CHESS_LOG", "CHESS_COMPUTER", "CHESS_PLIES"} {
		t.Setenv(k, "")
	}
	c, err := Load("test", nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Addr != ":3000" || c.Plies != 200 || c.Computer != "" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if side, _ := c.ComputerSide(); side != nil {
		t.Fatalf("expected no computer side")
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Setenv("CHESS_ADDR", ":9000")
	t.Setenv("CHESS_COMPUTER", "black")
	t.Setenv("CHESS_NO_COLOR", "yes")
	t.Setenv("CHESS_PLIES", "12")

	c, err := Load("test", []string{"-addr", ":9100"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Addr != ":9100" {
		t.Fatalf("flag should win over env, got %s", c.Addr)
	}
	if !c.NoColor || c.Plies != 12 {
		t.Fatalf("env not applied: %+v", c)
	}
	side, err := c.ComputerSide()
	if err != nil || side == nil || *side != model.Black {
		t.Fatalf("ComputerSide = %v, %v", side, err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("CHESS_COMPUTER", "")
	if _, err := Load("test", []string{"-computer", "purple"}); err == nil {
		t.Fatalf("expected an error for an unknown side")
	}
	if _, err := Load("test", []string{"-plies", "-1"}); err == nil {
		t.Fatalf("expected an error for negative plies")
	}
}

func TestOriginList(t *testing.T) {
	c := Config{Origins: " http://a.test, ,http://b.test "}
	want := []string{"http://a.test", "http://b.test"}
	if got := c.OriginList(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInitLog(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	path := filepath.Join(t.TempDir(), "chess.log")
	closeLog, err := InitLog(path, "TEST: ")
	if err != nil {
		t.Fatal(err)
	}
	log.Print("hello")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "TEST: ") || !strings.Contains(string(data), "hello") {
		t.Fatalf("unexpected log contents %q", data)
	}
}

package model

import (
	"fmt"
	"strings"
)

type Player uint8

const (
	White Player = iota
	Black
)

func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

func (p Player) String() string {
	if p == White {
		return "white"
	}
	return "black"
}

// forward is the row delta a pawn of this player advances by.
func (p Player) forward() int {
	if p == White {
		return -1
	}
	return 1
}

func (p Player) pawnStartRow() int {
	if p == White {
		return Size - 2
	}
	return 1
}

func (p Player) promotionRow() int {
	if p == White {
		return 0
	}
	return Size - 1
}

func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return White, fmt.Errorf("invalid player %q", s)
	}
}

func (p Player) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Player) UnmarshalText(text []byte) error {
	parsed, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

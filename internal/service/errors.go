package service

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrIllegalMove  = errors.New("illegal move")
	ErrNotYourTurn  = errors.New("it is the computer's turn")
	ErrGameOver     = errors.New("game is over")
	ErrCannotCastle = errors.New("cannot castle")
	ErrNoMove       = errors.New("no valid move found")
)

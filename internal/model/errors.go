package model

import "errors"

var (
	ErrEmptyHistory  = errors.New("no move to undo")
	ErrOutOfBounds   = errors.New("coordinates out of bounds")
	ErrNoPiece       = errors.New("no piece at source square")
	ErrNilPiece      = errors.New("nil piece")
	ErrMalformedMove = errors.New("malformed move")
)

package service

import (
	"fmt"
	"log"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"

	"github.com/benbeisheim/chessmodel/internal/model"
)

// CastleSide names the rook a king castles with.
type CastleSide string

const (
	KingSide  CastleSide = "king"
	QueenSide CastleSide = "queen"
)

// Observer receives the session state after every change.
type Observer func(GameView)

// turn is one player action. A castle is two plies on the game history but a
// single turn for undo.
type turn struct {
	plies int
	move  model.Move
	auto  bool // the computer's own reply
}

// Session is a game shared between clients. All access to the underlying
// model.Game goes through the session lock.
type Session struct {
	ID   string
	Name string

	mu        sync.Mutex
	game      *model.Game
	computer  *model.Player
	turns     []turn
	version   uint64
	observers map[string]Observer

	// notify is taken before mu is released so pushes leave in version order.
	notify sync.Mutex
}

// NewSession wraps g. When computer is set and owns the first move, the
// computer plays it straight away.
func NewSession(g *model.Game, computer *model.Player) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Name:      petname.Generate(2, "-"),
		game:      g,
		computer:  computer,
		observers: make(map[string]Observer),
	}
	s.reply()
	return s
}

func (s *Session) View() GameView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

// Validate checks m for the side that owns the moving piece without applying
// it.
func (s *Session) Validate(m model.Move) Validation {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.game.IsValidMove(m)
	v := s.game.LastValidity()
	return Validation{Move: m, Valid: ok, Validity: v, Message: v.Message()}
}

// Play applies m for the side to move, then lets the computer answer if it
// owns the other side.
func (s *Session) Play(m model.Move) (GameView, error) {
	s.mu.Lock()
	if err := s.playable(); err != nil {
		s.mu.Unlock()
		return GameView{}, err
	}
	p := s.game.PieceAt(m.FromRow, m.FromCol)
	if p != nil && p.Owner() != s.game.CurrentPlayer() {
		s.mu.Unlock()
		return GameView{}, fmt.Errorf("%w: %s is not %s's piece", ErrIllegalMove, m.From(), s.game.CurrentPlayer())
	}
	if !s.game.IsValidMove(m) {
		msg := s.game.LastValidity().Message()
		s.mu.Unlock()
		return GameView{}, fmt.Errorf("%w: %s", ErrIllegalMove, msg)
	}
	if err := s.game.Move(m); err != nil {
		s.mu.Unlock()
		return GameView{}, err
	}
	s.turns = append(s.turns, turn{plies: 1, move: m})
	s.reply()
	return s.publish()
}

// Undo reverts the latest turn. Against the computer it keeps going until the
// human is to move again; the computer's opening move is never undone.
func (s *Session) Undo() (GameView, error) {
	s.mu.Lock()
	if len(s.turns) == 0 || (len(s.turns) == 1 && s.turns[0].auto) {
		s.mu.Unlock()
		return GameView{}, model.ErrEmptyHistory
	}
	s.undoTurn()
	for len(s.turns) > 0 && s.computerToMove() {
		s.undoTurn()
	}
	return s.publish()
}

func (s *Session) undoTurn() {
	last := s.turns[len(s.turns)-1]
	s.turns = s.turns[:len(s.turns)-1]
	for i := 0; i < last.plies; i++ {
		if err := s.game.Undo(); err != nil {
			log.Printf("session %s: undo: %v", s.ID, err)
			return
		}
	}
}

// Castle moves the side to move's rook next to its king and the king two
// squares toward it. It is refused while in check, when either piece is off
// its home square, when the rook's path is blocked, or when the king would end
// in check.
func (s *Session) Castle(side CastleSide) (GameView, error) {
	s.mu.Lock()
	if err := s.playable(); err != nil {
		s.mu.Unlock()
		return GameView{}, err
	}
	if err := s.castle(side); err != nil {
		s.mu.Unlock()
		return GameView{}, err
	}
	s.reply()
	return s.publish()
}

func (s *Session) castle(side CastleSide) error {
	g := s.game
	me := g.CurrentPlayer()

	row := 0
	if me == model.White {
		row = model.Size - 1
	}
	const kingCol = 4
	var rookCol, step int
	switch side {
	case QueenSide:
		rookCol, step = 0, -1
	case KingSide:
		rookCol, step = model.Size-1, 1
	default:
		return fmt.Errorf("%w: unknown side %q", ErrCannotCastle, side)
	}

	if g.InCheck(me) {
		return fmt.Errorf("%w: %s is in check", ErrCannotCastle, me)
	}
	k, r := g.PieceAt(row, kingCol), g.PieceAt(row, rookCol)
	if k == nil || k.Kind() != model.King || k.Owner() != me ||
		r == nil || r.Kind() != model.Rook || r.Owner() != me {
		return fmt.Errorf("%w: king and rook must be on their home squares", ErrCannotCastle)
	}

	rookMove := model.Move{FromRow: row, FromCol: rookCol, ToRow: row, ToCol: kingCol + step}
	kingMove := model.Move{FromRow: row, FromCol: kingCol, ToRow: row, ToCol: kingCol + 2*step}
	if !g.IsValidMove(rookMove) {
		return fmt.Errorf("%w: the way is blocked", ErrCannotCastle)
	}
	if err := g.Move(rookMove); err != nil {
		return err
	}
	if err := g.Move(kingMove); err != nil {
		_ = g.Undo()
		return err
	}
	if g.InCheck(me) {
		_ = g.Undo()
		_ = g.Undo()
		return fmt.Errorf("%w: the king would be in check", ErrCannotCastle)
	}
	// Two plies hand the move back to the castler.
	g.SetCurrentPlayer(me.Opponent())
	s.turns = append(s.turns, turn{plies: 2, move: kingMove})
	return nil
}

// ComputerMove lets the selector play one move for the side to move,
// whoever controls it.
func (s *Session) ComputerMove() (GameView, error) {
	s.mu.Lock()
	if s.game.IsComplete() {
		s.mu.Unlock()
		return GameView{}, ErrGameOver
	}
	if !s.selectMove(false) {
		s.mu.Unlock()
		return GameView{}, ErrNoMove
	}
	s.reply()
	return s.publish()
}

func (s *Session) FindPieces(owner model.Player, kind model.Kind) []model.Coord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.FindPieces(owner, kind)
}

// Subscribe registers fn under id, replacing any earlier observer with the
// same id.
func (s *Session) Subscribe(id string, fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers[id] = fn
}

func (s *Session) Unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observers, id)
}

// playable must be called with s.mu held.
func (s *Session) playable() error {
	if s.computerToMove() {
		return ErrNotYourTurn
	}
	if s.game.IsComplete() {
		return ErrGameOver
	}
	return nil
}

func (s *Session) computerToMove() bool {
	return s.computer != nil && *s.computer == s.game.CurrentPlayer()
}

// reply plays the computer's move when it is the computer's turn.
func (s *Session) reply() {
	if !s.computerToMove() || s.game.IsComplete() {
		return
	}
	if !s.selectMove(true) {
		log.Printf("session %s: computer (%s) found no move", s.ID, s.game.CurrentPlayer())
	}
}

func (s *Session) selectMove(auto bool) bool {
	m, ok := s.game.SelectMove()
	if ok {
		s.turns = append(s.turns, turn{plies: 1, move: m, auto: auto})
	}
	return ok
}

// publish bumps the version, builds the view, releases s.mu and notifies
// observers outside it. Observers must not change the session.
func (s *Session) publish() (GameView, error) {
	s.version++
	v := s.view()
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.notify.Lock()
	s.mu.Unlock()
	defer s.notify.Unlock()

	for _, fn := range observers {
		fn(v)
	}
	return v, nil
}

package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Game is a tic-tac-toe position: the board and the side to move. Game is a
// value; Play and Children never modify the receiver.
type Game struct {
	board Board
	turn  Player
}

// NewGame returns the empty board with cross to move.
func NewGame() Game {
	return Game{turn: CrossPlayer}
}

func FromBoard(board Board, turn Player) Game {
	return Game{board: board, turn: turn}
}

// ParseBoard reads nine tiles in row-major order from x, o and . (or _).
// Whitespace and | separators are ignored.
func ParseBoard(text string, turn Player) (Game, error) {
	var tiles []TileState
	for _, r := range strings.ToLower(text) {
		switch r {
		case 'x':
			tiles = append(tiles, Cross)
		case 'o':
			tiles = append(tiles, Circle)
		case '.', '_':
			tiles = append(tiles, Empty)
		case '|', ' ', '\t', '\n', '\r', '/':
		default:
			return Game{}, errors.Errorf("unexpected tile %q in board %q", r, text)
		}
	}
	if len(tiles) != Size*Size {
		return Game{}, errors.Errorf("board %q has %d tiles, want %d", text, len(tiles), Size*Size)
	}

	var board Board
	for i, t := range tiles {
		board[i/Size][i%Size] = t
	}
	return FromBoard(board, turn), nil
}

// ParsePlayer reads x or o.
func ParsePlayer(text string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "x", "cross":
		return CrossPlayer, nil
	case "o", "circle":
		return CirclePlayer, nil
	default:
		return 0, errors.Errorf("unknown player %q", text)
	}
}

// InferTurn returns the side to move when cross moved first: cross if both
// sides have marked equally many tiles, circle otherwise.
func (b Board) InferTurn() Player {
	var crosses, circles int
	for _, row := range b {
		for _, t := range row {
			switch t {
			case Cross:
				crosses++
			case Circle:
				circles++
			}
		}
	}
	if crosses > circles {
		return CirclePlayer
	}
	return CrossPlayer
}

func (g Game) Board() Board {
	return g.board
}

func (g Game) Turn() Player {
	return g.turn
}

func (g Game) Tile(c Coordinate) TileState {
	return g.board[c.Row][c.Col]
}

// EmptyTiles lists the empty coordinates in row-major order.
func (g Game) EmptyTiles() []Coordinate {
	var tiles []Coordinate
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if g.board[i][j] == Empty {
				tiles = append(tiles, Coordinate{Row: i, Col: j})
			}
		}
	}
	return tiles
}

// LegalMoves lists the moves for the side to move; none once the game is over.
func (g Game) LegalMoves() []Coordinate {
	if _, over := g.Outcome(); over {
		return nil
	}
	return g.EmptyTiles()
}

// MakeMove marks c for the side to move and passes the turn.
func (g *Game) MakeMove(c Coordinate) error {
	if !c.Valid() {
		return errors.Errorf("coordinate %s is off the board", c)
	}
	if g.board[c.Row][c.Col] != Empty {
		return errors.Errorf("tile %s is occupied", c)
	}
	if outcome, over := g.Outcome(); over {
		return errors.Errorf("game is over: %s", outcome)
	}

	g.board[c.Row][c.Col] = g.turn.Tile()
	g.turn = g.turn.Opponent()
	return nil
}

// Play returns the position after the side to move marks c.
func (g Game) Play(c Coordinate) (Game, error) {
	next := g
	if err := next.MakeMove(c); err != nil {
		return g, err
	}
	return next, nil
}

// Children returns the position after every legal move, in row-major order.
func (g Game) Children() []Game {
	moves := g.LegalMoves()
	children := make([]Game, 0, len(moves))
	for _, c := range moves {
		child := g
		child.board[c.Row][c.Col] = g.turn.Tile()
		child.turn = g.turn.Opponent()
		children = append(children, child)
	}
	return children
}

// Outcome reports the result once a line is completed or the board is full.
func (g Game) Outcome() (Outcome, bool) {
	for _, coords := range lines {
		if winner, ok := g.board.line(coords).winner(); ok {
			if winner == CrossPlayer {
				return CrossWin, true
			}
			return CircleWin, true
		}
	}
	if len(g.EmptyTiles()) == 0 {
		return Draw, true
	}
	return 0, false
}

// Notation returns the nine tiles in row-major order, e.g. "xx.oo....".
func (g Game) Notation() string {
	var sb strings.Builder
	for _, row := range g.board {
		for _, t := range row {
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}

// String renders three rows of three tiles.
func (g Game) String() string {
	var sb strings.Builder
	for _, row := range g.board {
		sb.WriteString("| ")
		for _, t := range row {
			switch t {
			case Cross:
				sb.WriteString(" x ")
			case Circle:
				sb.WriteString(" o ")
			default:
				sb.WriteString("   ")
			}
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}

package game

import "fmt"

const Size = 3

type TileState int

const (
	Empty TileState = iota
	Cross
	Circle
)

func (t TileState) String() string {
	switch t {
	case Cross:
		return "x"
	case Circle:
		return "o"
	default:
		return "."
	}
}

// Player is the side to move. Cross always moves first.
type Player int

const (
	CrossPlayer Player = iota
	CirclePlayer
)

func (p Player) Opponent() Player {
	if p == CrossPlayer {
		return CirclePlayer
	}
	return CrossPlayer
}

// Tile returns the mark the player puts on the board.
func (p Player) Tile() TileState {
	if p == CrossPlayer {
		return Cross
	}
	return Circle
}

func (p Player) String() string {
	return p.Tile().String()
}

type Outcome int

const (
	CrossWin Outcome = iota
	CircleWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case CrossWin:
		return "cross wins"
	case CircleWin:
		return "circle wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Coordinate addresses a tile by row and column, both in [0, Size).
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) Valid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

type Line [Size]TileState

type Board [Size]Line

// lines lists every row, column and both diagonals.
var lines = func() [][Size]Coordinate {
	var all [][Size]Coordinate
	for i := 0; i < Size; i++ {
		var row, col [Size]Coordinate
		for j := 0; j < Size; j++ {
			row[j] = Coordinate{Row: i, Col: j}
			col[j] = Coordinate{Row: j, Col: i}
		}
		all = append(all, row, col)
	}
	var negative, positive [Size]Coordinate
	for i := 0; i < Size; i++ {
		negative[i] = Coordinate{Row: i, Col: i}
		positive[i] = Coordinate{Row: Size - 1 - i, Col: i}
	}
	return append(all, negative, positive)
}()

func (b Board) line(coords [Size]Coordinate) Line {
	var l Line
	for i, c := range coords {
		l[i] = b[c.Row][c.Col]
	}
	return l
}

// winner returns the owner of a completed line.
func (l Line) winner() (Player, bool) {
	if l[0] == Empty {
		return 0, false
	}
	for _, t := range l[1:] {
		if t != l[0] {
			return 0, false
		}
	}
	if l[0] == Cross {
		return CrossPlayer, true
	}
	return CirclePlayer, true
}

// Package arcade plays a block breaking game program: the program draws
// tiles and reports its score through output triples, and reads joystick
// positions as input.
package arcade

import (
	"bufio"
	"context"
	"io"
	"strconv"

	"github.com/jcorbin/intcode"
	"github.com/jcorbin/intcode/internal/grid"
	"github.com/pkg/errors"
)

// Tile is what the game draws at a screen position.
type Tile int64

// Tiles.
const (
	Empty Tile = iota
	Wall
	Block
	Paddle
	Ball
)

var tileRunes = [...]rune{' ', '#', 'x', '-', 'o'}

// Rune returns the character used to render the tile.
func (t Tile) Rune() rune {
	if t >= 0 && int(t) < len(tileRunes) {
		return tileRunes[t]
	}
	return '?'
}

// Valid returns true if t is a known tile.
func (t Tile) Valid() bool { return t >= Empty && t <= Ball }

// scorePos is the pseudo position at which the game outputs its score.
var scorePos = grid.Point{X: -1, Y: 0}

// Game tracks the screen and score of a game program.
type Game struct {
	Program []int64
	Options []intcode.Option

	// Screen holds the last tile drawn at every position.
	Screen map[grid.Point]Tile

	// Score is the last score reported by the game.
	Score int64

	// Frame, when non-nil, is called every time the game waits for
	// joystick input, after the screen has been drawn.
	Frame func(g *Game) error

	ball, paddle int64
	quarters     int64
	hasQuarters  bool
}

// New creates a game for program.
func New(program []int64, opts ...intcode.Option) *Game {
	return &Game{Program: program, Options: opts}
}

// InsertQuarters sets memory cell 0 to n for the next Play, switching the
// game into free play. Zero is written like any other n.
func (g *Game) InsertQuarters(n int64) { g.quarters, g.hasQuarters = n, true }

// Play runs the game program until it halts, steering the paddle toward the
// ball, and returns the final score.
func (g *Game) Play(ctx context.Context) (int64, error) {
	g.Screen = make(map[grid.Point]Tile)
	g.Score = 0

	m := intcode.New(g.Program, nil, g.Options...)
	if g.hasQuarters {
		if err := m.Write(0, g.quarters); err != nil {
			return 0, err
		}
		g.quarters, g.hasQuarters = 0, false
	}

	var draw [3]int64
	n := 0
	for {
		ev, err := m.Run()
		if err != nil {
			return g.Score, err
		}
		switch ev.Kind {
		case intcode.Output:
			draw[n] = ev.Value
			if n++; n == len(draw) {
				n = 0
				if err := g.draw(draw[0], draw[1], draw[2]); err != nil {
					return g.Score, err
				}
			}

		case intcode.AwaitingInput:
			if err := ctx.Err(); err != nil {
				return g.Score, err
			}
			if g.Frame != nil {
				if err := g.Frame(g); err != nil {
					return g.Score, err
				}
			}
			m.PushInput(g.Joystick())

		case intcode.Halted:
			if n != 0 {
				return g.Score, errors.Errorf("game halted with an incomplete draw %v", draw[:n])
			}
			return g.Score, nil
		}
	}
}

func (g *Game) draw(x, y, val int64) error {
	pos := grid.Point{X: int(x), Y: int(y)}
	if pos == scorePos {
		g.Score = val
		return nil
	}
	tile := Tile(val)
	if !tile.Valid() {
		return errors.Errorf("invalid tile id %v @%v", val, pos)
	}
	switch tile {
	case Ball:
		g.ball = x
	case Paddle:
		g.paddle = x
	}
	g.Screen[pos] = tile
	return nil
}

// Joystick returns the input that moves the paddle toward the ball:
// -1 for left, 1 for right, or 0 to stay put.
func (g *Game) Joystick() int64 {
	switch {
	case g.ball < g.paddle:
		return -1
	case g.ball > g.paddle:
		return 1
	}
	return 0
}

// Count returns how many screen positions hold tile.
func (g *Game) Count(tile Tile) int {
	n := 0
	for _, t := range g.Screen {
		if t == tile {
			n++
		}
	}
	return n
}

// Render writes the screen, followed by the score, to w.
func (g *Game) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if r, ok := grid.Bounds(func(f func(grid.Point)) {
		for p := range g.Screen {
			f(p)
		}
	}); ok {
		for y := r.Min.Y; y <= r.Max.Y; y++ {
			for x := r.Min.X; x <= r.Max.X; x++ {
				bw.WriteRune(g.Screen[grid.Point{X: x, Y: y}].Rune())
			}
			bw.WriteByte('\n')
		}
	}
	bw.WriteString("score: ")
	bw.WriteString(strconv.FormatInt(g.Score, 10))
	bw.WriteByte('\n')
	return bw.Flush()
}

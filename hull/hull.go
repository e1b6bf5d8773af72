// Package hull drives a painting robot program across a sparse grid of panels.
//
// The robot starts at the origin facing up. Each step it gives the program
// the color of the panel under it, then reads two outputs: the color to
// paint that panel, and a turn (0 for left, 1 for right), after which it
// moves forward one panel.
package hull

import (
	"context"
	"strings"

	"github.com/jcorbin/intcode"
	"github.com/jcorbin/intcode/internal/grid"
	"github.com/pkg/errors"
)

// Color is a panel color.
type Color int64

// Panel colors; unpainted panels are Black.
const (
	Black Color = 0
	White Color = 1
)

// Panels maps painted panel positions to their last color.
type Panels map[grid.Point]Color

var headings = [4]grid.Point{grid.Up, grid.Right, grid.Down, grid.Left}

// Robot is a position and a heading.
type Robot struct {
	Pos     grid.Point
	heading int
}

// Heading returns the step the robot takes when moving forward.
func (r *Robot) Heading() grid.Point { return headings[r.heading] }

// Turn rotates the robot 90 degrees left for 0 or right for 1.
func (r *Robot) Turn(dir int64) error {
	switch dir {
	case 0:
		r.heading = (r.heading + 3) % 4
	case 1:
		r.heading = (r.heading + 1) % 4
	default:
		return errors.Errorf("invalid turn direction %v", dir)
	}
	return nil
}

// Forward moves the robot one panel along its heading.
func (r *Robot) Forward() { r.Pos = r.Pos.Add(r.Heading()) }

// Paint runs program with the robot starting on a panel of color start,
// returning every panel painted by the time the program halts.
func Paint(ctx context.Context, program []int64, start Color, opts ...intcode.Option) (Panels, error) {
	m := intcode.New(program, []int64{int64(start)}, opts...)
	var robot Robot
	panels := make(Panels)

	next := func() (val int64, halted bool, err error) {
		ev, err := m.Run()
		if err != nil {
			return 0, true, err
		}
		switch ev.Kind {
		case intcode.AwaitingInput:
			return 0, true, errors.Errorf("robot program awaits input @%v", robot.Pos)
		case intcode.Halted:
			return 0, true, nil
		}
		return ev.Value, false, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return panels, err
		}

		color, halted, err := next()
		if halted {
			return panels, err
		}
		if color != int64(Black) && color != int64(White) {
			return panels, errors.Errorf("invalid paint color %v @%v", color, robot.Pos)
		}
		panels[robot.Pos] = Color(color)

		turn, halted, err := next()
		if halted {
			return panels, err
		}
		if err := robot.Turn(turn); err != nil {
			return panels, err
		}
		robot.Forward()

		m.PushInput(int64(panels[robot.Pos]))
	}
}

// Render draws the bounding box of all white panels, one line per row, with
// '#' for white and ' ' otherwise.
func (panels Panels) Render() string {
	r, ok := grid.Bounds(func(f func(grid.Point)) {
		for p, c := range panels {
			if c == White {
				f(p)
			}
		}
	})
	if !ok {
		return ""
	}
	var sb strings.Builder
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			if panels[grid.Point{X: x, Y: y}] == White {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

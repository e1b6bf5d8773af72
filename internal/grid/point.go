// Package grid provides integer plane geometry for the screen and panel drivers.
package grid

import "fmt"

// Point is a location on the integer plane; Y grows downward.
type Point struct{ X, Y int }

// Compass steps.
var (
	Up    = Point{0, -1}
	Right = Point{1, 0}
	Down  = Point{0, 1}
	Left  = Point{-1, 0}
)

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Add returns p moved by d.
func (p Point) Add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	d := p.Sub(q)
	return abs(d.X) + abs(d.Y)
}

// Rect is an inclusive bounding box.
type Rect struct{ Min, Max Point }

// Bounds returns the smallest Rect containing every point passed to f by
// each; ok is false if there were none.
func Bounds(each func(f func(p Point))) (r Rect, ok bool) {
	each(func(p Point) {
		if !ok {
			r = Rect{p, p}
			ok = true
			return
		}
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	})
	return r, ok
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

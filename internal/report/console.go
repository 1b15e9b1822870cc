package report

import (
	"fmt"
	"io"

	"github.com/san-kum/trajsim/internal/projectile"
)

// Console prints every Every-th state as the run progresses, and the apex
// when the vertical velocity turns negative. Write errors are dropped.
type Console struct {
	w      io.Writer
	every  int
	prevVY float64
	seen   bool
	apex   bool
}

func NewConsole(w io.Writer, every int) *Console {
	if every < 1 {
		every = 1
	}
	return &Console{w: w, every: every}
}

func (c *Console) OnStep(s projectile.State) {
	if c.seen && !c.apex && c.prevVY > 0 && s.Vel.Y < 0 {
		c.apex = true
		fmt.Fprintf(c.w, "max height reached at t=%.4f (y=%.4f)\n", s.T, s.Pos.Y)
	}
	c.prevVY = s.Vel.Y
	c.seen = true

	if s.Step%c.every != 0 {
		return
	}
	fmt.Fprintf(c.w, "t=%-8.4f x=%-10.4f y=%-10.4f θ=%-8.3f vx=%-9.4f vy=%-9.4f ax=%-9.4f ay=%-9.4f\n",
		s.T, s.Pos.X, s.Pos.Y, s.AngleDeg(), s.Vel.X, s.Vel.Y, s.Acc.X, s.Acc.Y)
}

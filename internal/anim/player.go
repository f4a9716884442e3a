package anim

import (
	"time"

	"github.com/SeamusWaldron/neoncube"
)

// Player shows at most one turn at a time. Starting a new turn drops the
// one in progress; the model is already final, so nothing is lost.
type Player struct {
	current *Rotation
}

// Start begins animating m on cube.
func (p *Player) Start(cube *neoncube.Cube, m neoncube.Move) {
	p.current = NewRotation(cube, m)
}

// Advance steps the current turn and clears it once finished.
func (p *Player) Advance(d time.Duration) {
	if p.current == nil {
		return
	}
	if p.current.Advance(d) {
		p.current = nil
	}
}

// Active reports whether a turn is being shown.
func (p *Player) Active() bool {
	return p.current != nil
}

// Current returns the turn in progress, or nil.
func (p *Player) Current() *Rotation {
	return p.current
}

// Reset drops any turn in progress.
func (p *Player) Reset() {
	p.current = nil
}

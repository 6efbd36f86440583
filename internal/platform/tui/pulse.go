package tui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse is a looping 0→1→0 glow used to make treasure stand out.
type Pulse struct {
	duration float32
	rising   bool
	tween    *gween.Tween
	value    float32
}

// NewPulse creates a pulse that takes period seconds for a full cycle.
func NewPulse(period float32) *Pulse {
	if period <= 0 {
		period = 1
	}
	p := &Pulse{duration: period / 2, rising: true}
	p.tween = gween.New(0, 1, p.duration, ease.InOutSine)
	return p
}

// Update advances the pulse by dt seconds and returns its value in [0,1].
func (p *Pulse) Update(dt float32) float64 {
	v, done := p.tween.Update(dt)
	p.value = v
	if done {
		p.rising = !p.rising
		if p.rising {
			p.tween = gween.New(0, 1, p.duration, ease.InOutSine)
		} else {
			p.tween = gween.New(1, 0, p.duration, ease.InOutSine)
		}
	}
	return float64(p.value)
}

// Value returns the last computed value.
func (p *Pulse) Value() float64 {
	return float64(p.value)
}

// Package bullettime scales real frame time by the slowest active time class.
// The physics pipeline reads Delta once per tick.
package bullettime

import (
	"slices"
	"time"
)

// Class is a named time-scale. The zero value of a class type is used as the
// initial base and should have factor 1.
type Class interface {
	comparable
	Factor() float64
}

// DefaultClass is used by hosts that never slow time down.
type DefaultClass int

const Normal DefaultClass = 0

func (DefaultClass) Factor() float64 { return 1 }

type effect[C Class] struct {
	class    C
	timeLeft float64 // real seconds
}

type BulletTime[C Class] struct {
	base    C
	effects []effect[C]
	delta   time.Duration
}

func New[C Class]() *BulletTime[C] {
	return &BulletTime[C]{}
}

// Fixed returns a time source whose delta is always d. Useful for servers and
// tests that advance at a constant rate.
func Fixed[C Class](d time.Duration) *BulletTime[C] {
	bt := New[C]()
	bt.Tick(d)
	return bt
}

// Tick advances effect timers by the real frame time and recomputes Delta.
// Effects count down in real time so a slow-motion effect lasts as long on the
// wall clock as it says.
func (b *BulletTime[C]) Tick(real time.Duration) {
	secs := real.Seconds()
	for i := range b.effects {
		b.effects[i].timeLeft -= secs
	}
	b.effects = slices.DeleteFunc(b.effects, func(e effect[C]) bool {
		return e.timeLeft <= 0
	})
	b.delta = time.Duration(float64(real) * b.Factor())
}

// Factor is the slowest active effect's factor, or the base factor when no
// effect is active.
func (b *BulletTime[C]) Factor() float64 {
	if len(b.effects) == 0 {
		return b.base.Factor()
	}
	f := b.effects[0].class.Factor()
	for _, e := range b.effects[1:] {
		f = min(f, e.class.Factor())
	}
	return f
}

func (b *BulletTime[C]) Delta() time.Duration { return b.delta }

func (b *BulletTime[C]) DeltaSecs() float64 { return b.delta.Seconds() }

func (b *BulletTime[C]) Base() C { return b.base }

func (b *BulletTime[C]) SetBase(c C) { b.base = c }

// AddEffect applies class for the given number of real seconds.
func (b *BulletTime[C]) AddEffect(class C, seconds float64) {
	b.effects = append(b.effects, effect[C]{class: class, timeLeft: seconds})
}

func (b *BulletTime[C]) ClearEffects() {
	b.effects = b.effects[:0]
}

// Active reports how many effects are still running.
func (b *BulletTime[C]) Active() int { return len(b.effects) }

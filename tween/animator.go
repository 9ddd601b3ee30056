package tween

import "github.com/google/uuid"

// Animator owns every running tween and advances them once per frame. Callers
// hold tween IDs, never the tweens themselves.
type Animator struct {
	tweens map[uuid.UUID]*Tween
	order  []uuid.UUID
}

func NewAnimator() *Animator {
	return &Animator{tweens: make(map[uuid.UUID]*Tween)}
}

// To starts a tween from the property's current value to the target and
// returns its ID.
func (a *Animator) To(prop Property, to float32, opts Options) uuid.UUID {
	t := newTween(prop, to, opts)
	a.tweens[t.id] = t
	a.order = append(a.order, t.id)
	return t.id
}

// Kill stops the tween where it is and forgets it. It reports whether a live
// tween was stopped; unknown, finished and nil IDs are ignored.
func (a *Animator) Kill(id uuid.UUID) bool {
	t, ok := a.tweens[id]
	if !ok {
		return false
	}
	t.killed = true
	delete(a.tweens, id)
	return true
}

// Active reports whether the tween with this ID will still write to its property.
func (a *Animator) Active(id uuid.UUID) bool {
	t, ok := a.tweens[id]
	return ok && t.live()
}

// Update advances all tweens by dt seconds, in start order, and drops finished ones.
func (a *Animator) Update(dt float32) {
	live := a.order[:0]
	for _, id := range a.order {
		t, ok := a.tweens[id]
		if !ok {
			continue
		}
		t.advance(dt)
		if !t.live() {
			delete(a.tweens, id)
			continue
		}
		live = append(live, id)
	}
	a.order = live
}

// Len returns the number of live tweens.
func (a *Animator) Len() int {
	return len(a.tweens)
}

// Slot holds the ID of the single tween allowed to drive one property. The
// zero value is an empty slot.
type Slot struct {
	id uuid.UUID
}

// Start kills whatever the slot held and starts a new tween in its place.
func (s *Slot) Start(a *Animator, prop Property, to float32, opts Options) uuid.UUID {
	a.Kill(s.id)
	s.id = a.To(prop, to, opts)
	return s.id
}

// Kill stops the held tween and empties the slot.
func (s *Slot) Kill(a *Animator) {
	a.Kill(s.id)
	s.id = uuid.Nil
}

// Active reports whether the slot's tween is still running.
func (s *Slot) Active(a *Animator) bool {
	return a.Active(s.id)
}

// ID returns the held tween ID, uuid.Nil for an empty slot. The tween may
// already have finished.
func (s *Slot) ID() uuid.UUID {
	return s.id
}

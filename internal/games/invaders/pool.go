package invaders

// Pool is a fixed-capacity arena of reusable slots.
// Slots are never reallocated; a full pool silently drops new requests.
type Pool[T any] struct {
	items  []T
	active []bool
	count  int
}

// NewPool creates a pool with the given number of slots.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{
		items:  make([]T, capacity),
		active: make([]bool, capacity),
	}
}

// Acquire stores v in the first inactive slot (lowest index) and returns
// that index. ok is false if every slot is active.
func (p *Pool[T]) Acquire(v T) (index int, ok bool) {
	for i, used := range p.active {
		if !used {
			p.items[i] = v
			p.active[i] = true
			p.count++
			return i, true
		}
	}
	return -1, false
}

// ReleaseAt frees slot i. Invalid or already free slots are ignored.
func (p *Pool[T]) ReleaseAt(i int) {
	if i < 0 || i >= len(p.active) || !p.active[i] {
		return
	}
	p.active[i] = false
	p.count--
}

// IsActive reports whether slot i holds a live item.
func (p *Pool[T]) IsActive(i int) bool {
	return i >= 0 && i < len(p.active) && p.active[i]
}

// At returns a pointer to the item in slot i, or nil if i is out of range.
func (p *Pool[T]) At(i int) *T {
	if i < 0 || i >= len(p.items) {
		return nil
	}
	return &p.items[i]
}

// ForEachActive calls fn for every active slot in index order.
// fn may release the slot it is given.
func (p *Pool[T]) ForEachActive(fn func(i int, item *T)) {
	for i := range p.items {
		if p.active[i] {
			fn(i, &p.items[i])
		}
	}
}

// ActiveCount returns the number of active slots.
func (p *Pool[T]) ActiveCount() int { return p.count }

// Cap returns the pool capacity.
func (p *Pool[T]) Cap() int { return len(p.items) }

// HasFree reports whether Acquire would succeed.
func (p *Pool[T]) HasFree() bool { return p.count < len(p.items) }

// Clear releases every slot.
func (p *Pool[T]) Clear() {
	for i := range p.active {
		p.active[i] = false
	}
	p.count = 0
}

package dqueue

// D is the batched-prepend queue described in §4.8. The zero value is a
// valid, empty queue.
type D struct {
	active  []int32
	pending [][]int32 // stack of batches, most-recently-prepended last
	spill   []int32
}

// Push appends a single vertex to the spill buffer.
func (d *D) Push(v int32) {
	d.spill = append(d.spill, v)
}

// BatchPrepend pushes a non-empty batch onto the pending stack. Batches
// prepended later are delivered strictly before older ones: every element
// of a later batch is pulled before any element of an earlier one still
// present. An empty batch is a no-op.
func (d *D) BatchPrepend(batch []int32) {
	if len(batch) == 0 {
		return
	}
	cp := make([]int32, len(batch))
	copy(cp, batch)
	d.pending = append(d.pending, cp)
}

// IsEmpty reports whether active, pending, and spill are all empty.
func (d *D) IsEmpty() bool {
	return len(d.active) == 0 && len(d.pending) == 0 && len(d.spill) == 0
}

// rotate refills the active list when it is exhausted: a pending batch, if
// any, becomes active (displacing whatever is left of the old active list
// into spill); otherwise the spill list is promoted to active. Reports
// whether active became non-empty.
func (d *D) rotate() bool {
	if len(d.active) != 0 {
		return true
	}
	if n := len(d.pending); n > 0 {
		batch := d.pending[n-1]
		d.pending = d.pending[:n-1]
		if len(d.active) != 0 {
			d.spill = append(d.spill, d.active...)
		}
		d.active = batch
		return true
	}
	if len(d.spill) != 0 {
		d.active, d.spill = d.spill, d.active[:0]
		return true
	}
	return false
}

// Pull drains everything currently reachable by rotation, invoking f on
// each popped vertex. Within a batch, delivery order is LIFO relative to
// the batch's insertion order (the last element pushed/prepended is
// delivered first). Pull returns once active, pending, and spill are all
// empty; f may call Push or BatchPrepend to feed more work into the same
// drain, since rotation is re-checked on every exhaustion.
func (d *D) Pull(f func(int32)) {
	for {
		if len(d.active) == 0 {
			if !d.rotate() {
				return
			}
		}
		n := len(d.active)
		v := d.active[n-1]
		d.active = d.active[:n-1]
		f(v)
	}
}

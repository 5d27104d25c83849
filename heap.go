package pqueue

// ArrayHeap is a binary max-heap over a buffer it grows and shrinks itself.
//
// The buffer doubles when full (the first allocation is one slot) and is
// reallocated to twice the live size once at most a quarter of it is used.
// Equal priorities are considered ordered, so ties come out in no
// particular order.
type ArrayHeap struct {
	buf  []Entry // len(buf) is the capacity
	size int
}

var _ Queue = (*ArrayHeap)(nil)

// NewArrayHeap returns an empty heap engine with no buffer allocated.
func NewArrayHeap() *ArrayHeap {
	return &ArrayHeap{}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// Reset releases the buffer.
func (h *ArrayHeap) Reset() {
	h.buf = nil
	h.size = 0
}

// Insert places the entry in the first free slot and sifts it up.
// It never fails.
func (h *ArrayHeap) Insert(priority, payload int) error {
	if h.size == len(h.buf) {
		newCap := 2 * len(h.buf)
		if newCap == 0 {
			newCap = 1
		}
		h.resize(newCap)
	}

	i := h.size
	h.buf[i] = Entry{Priority: priority, Payload: payload}
	h.size++

	// sift-up
	for i > 0 {
		p := parent(i)
		if h.buf[p].Priority >= h.buf[i].Priority {
			break
		}
		h.buf[p], h.buf[i] = h.buf[i], h.buf[p]
		i = p
	}
	return nil
}

// DeleteMax removes the root, sifts the former last entry down from the
// root, then shrinks the buffer if it has become underused.
func (h *ArrayHeap) DeleteMax() (Entry, bool) {
	if h.size == 0 {
		return Entry{}, false
	}

	top := h.buf[0]
	h.size--
	h.buf[0] = h.buf[h.size]
	h.buf[h.size] = Entry{}

	// sift-down
	i := 0
	for {
		j := left(i)
		if j >= h.size {
			break
		}
		if r := right(i); r < h.size && h.buf[r].Priority > h.buf[j].Priority {
			j = r
		}
		if h.buf[j].Priority <= h.buf[i].Priority {
			break
		}
		h.buf[i], h.buf[j] = h.buf[j], h.buf[i]
		i = j
	}

	if 4*h.size <= len(h.buf) {
		// at size 0 this drops the buffer; the next Insert allocates again
		h.resize(2 * h.size)
	}
	return top, true
}

func (h *ArrayHeap) PeekMax() (Entry, bool) {
	if h.size == 0 {
		return Entry{}, false
	}
	return h.buf[0], true
}

func (h *ArrayHeap) Len() int { return h.size }

// Cap returns the number of allocated slots.
func (h *ArrayHeap) Cap() int { return len(h.buf) }

// resize moves the live entries into a freshly allocated buffer of n slots.
func (h *ArrayHeap) resize(n int) {
	if n == 0 {
		h.buf = nil
		return
	}
	buf := make([]Entry, n)
	copy(buf, h.buf[:h.size])
	h.buf = buf
}

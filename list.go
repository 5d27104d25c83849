package pqueue

// listNode holds one entry and owns the rest of the chain.
type listNode struct {
	entry Entry
	next  *listNode
}

// SortedList is a singly-linked list kept in non-increasing priority order.
// Equal priorities keep insertion order, so the head is always the oldest
// entry of the highest priority.
//
// DeleteMax and PeekMax are O(1); Insert is O(n).
type SortedList struct {
	head *listNode
	size int
}

var _ Queue = (*SortedList)(nil)

// NewSortedList returns an empty list engine.
func NewSortedList() *SortedList {
	return &SortedList{}
}

// Reset drops the whole chain.
func (l *SortedList) Reset() {
	l.head = nil
	l.size = 0
}

// Insert links a new node after every existing node whose priority is >= priority.
// It never fails.
func (l *SortedList) Insert(priority, payload int) error {
	n := &listNode{entry: Entry{Priority: priority, Payload: payload}}
	l.size++

	if l.head == nil || priority > l.head.entry.Priority {
		n.next = l.head
		l.head = n
		return nil
	}

	cur := l.head
	for cur.next != nil && cur.next.entry.Priority >= priority {
		cur = cur.next
	}
	n.next = cur.next
	cur.next = n
	return nil
}

// DeleteMax unlinks the head.
func (l *SortedList) DeleteMax() (Entry, bool) {
	if l.head == nil {
		return Entry{}, false
	}
	n := l.head
	l.head = n.next
	n.next = nil
	l.size--
	return n.entry, true
}

func (l *SortedList) PeekMax() (Entry, bool) {
	if l.head == nil {
		return Entry{}, false
	}
	return l.head.entry, true
}

func (l *SortedList) Len() int { return l.size }

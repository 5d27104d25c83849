package pqueue

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidEntry is a base error for entries an engine refuses to store.
	ErrInvalidEntry = errors.New("pqueue: invalid entry")
	// ErrNegativePriority is returned by the bucket engine for priorities below zero.
	ErrNegativePriority = fmt.Errorf("%w: negative priority", ErrInvalidEntry)
	// ErrUnknownKind is returned when an engine id is not one of the known kinds.
	ErrUnknownKind = errors.New("pqueue: unknown engine kind")
)

// Entry is a (priority, payload) pair stored by an engine.
// Payload is opaque to the engines.
type Entry struct {
	Priority int
	Payload  int
}

func (e Entry) String() string {
	return fmt.Sprintf("%d %d", e.Priority, e.Payload)
}

// Queue is the contract shared by every engine.
//
// DeleteMax and PeekMax report false when there is nothing to return. An
// empty engine is not an error and the call leaves it untouched.
type Queue interface {
	// Reset releases all storage and leaves the engine empty.
	Reset()
	// Insert stores a new entry.
	Insert(priority, payload int) error
	// DeleteMax removes and returns the current maximum.
	DeleteMax() (Entry, bool)
	// PeekMax returns the current maximum without removing it.
	PeekMax() (Entry, bool)
	// Len returns the number of stored entries.
	Len() int
}

// Kind identifies an engine. The numeric values are the ids used on the
// command line.
type Kind int

const (
	KindList   Kind = 1
	KindHeap   Kind = 2
	KindBucket Kind = 3
)

// Kinds lists every engine kind in id order.
var Kinds = []Kind{KindList, KindHeap, KindBucket}

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindHeap:
		return "heap"
	case KindBucket:
		return "bucket"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Valid reports whether k names a known engine.
func (k Kind) Valid() bool {
	return k >= KindList && k <= KindBucket
}

// ParseKind parses an engine id ("1", "2", "3") or name ("list", "heap", "bucket").
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if s == k.String() {
			return k, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Kind(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return Kind(n), nil
}

// New returns a fresh, empty engine of the given kind.
func New(kind Kind) (Queue, error) {
	switch kind {
	case KindList:
		return NewSortedList(), nil
	case KindHeap:
		return NewArrayHeap(), nil
	case KindBucket:
		return NewBucketQueue(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// Drain deletes the maximum until q reports empty and returns the entries
// in the order they were removed.
func Drain(q Queue) []Entry {
	var out []Entry
	for {
		e, ok := q.DeleteMax()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

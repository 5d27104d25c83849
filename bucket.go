package pqueue

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// BucketQueue keeps one FIFO of payloads per priority value. The bucket at
// the last index is always the maximum: trailing empty buckets are trimmed
// after every removal.
//
// Cost follows the priority range rather than the entry count.
//
// A queue whose only bucket is priority 0 reports empty from DeleteMax and
// PeekMax; payloads stored at priority 0 are counted by Len but are never
// returned.
type BucketQueue struct {
	buckets []*linkedlistqueue.Queue
	size    int
}

var _ Queue = (*BucketQueue)(nil)

// NewBucketQueue returns an empty bucket engine.
func NewBucketQueue() *BucketQueue {
	return &BucketQueue{}
}

// Reset releases every bucket.
func (b *BucketQueue) Reset() {
	for _, q := range b.buckets {
		q.Clear()
	}
	b.buckets = nil
	b.size = 0
}

// Insert appends payload to the bucket for priority, adding empty buckets
// up to it when needed. Negative priorities are rejected with
// ErrNegativePriority and leave the queue unchanged.
func (b *BucketQueue) Insert(priority, payload int) error {
	if priority < 0 {
		return fmt.Errorf("%w: %d", ErrNegativePriority, priority)
	}
	for len(b.buckets) <= priority {
		b.buckets = append(b.buckets, linkedlistqueue.New())
	}
	b.buckets[priority].Enqueue(payload)
	b.size++
	return nil
}

// DeleteMax pops the front of the last bucket and trims trailing empty buckets.
func (b *BucketQueue) DeleteMax() (Entry, bool) {
	top := len(b.buckets) - 1
	if top <= 0 {
		return Entry{}, false
	}

	v, ok := b.buckets[top].Dequeue()
	if !ok {
		return Entry{}, false
	}
	b.size--

	for len(b.buckets) > 0 && b.buckets[len(b.buckets)-1].Empty() {
		b.buckets[len(b.buckets)-1] = nil
		b.buckets = b.buckets[:len(b.buckets)-1]
	}
	return Entry{Priority: top, Payload: v.(int)}, true
}

// PeekMax reports the front of the last bucket. It never trims.
func (b *BucketQueue) PeekMax() (Entry, bool) {
	top := len(b.buckets) - 1
	if top <= 0 {
		return Entry{}, false
	}
	v, ok := b.buckets[top].Peek()
	if !ok {
		return Entry{}, false
	}
	return Entry{Priority: top, Payload: v.(int)}, true
}

func (b *BucketQueue) Len() int { return b.size }

// Buckets returns the length of the bucket sequence, which is one more than
// the highest priority still held.
func (b *BucketQueue) Buckets() int { return len(b.buckets) }

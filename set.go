// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package concise implements CONCISE: a compressed sorted set of
// non-negative integers backed by a run-length-encoded bitmap of 32-bit
// words, in the spirit of WAH (Word-Aligned Hybrid) compression but
// extended with a "flip bit" that lets a single run word carry one
// exceptional set or unset bit. Set algebra (union, intersection,
// difference, symmetric difference, complement) and cardinality queries
// all operate directly on the compressed form without ever materialising
// a decompressed bitmap.
package concise

import "sort"

// MaxElement is the largest element a Set can hold: 31*2^25 + 30.
// The cap falls out of the 25-bit run-length field in a sequence word
// (§3 of the design notes): a single run word can span at most 2^25
// blocks of 31 bits each.
const MaxElement = 31*(1<<25) + 30

const sizeInvalid = -1

// Set is a sorted set of non-negative integers in [0, MaxElement],
// represented internally as a sequence of words (see word.go). It is not
// safe for concurrent use by multiple goroutines; a given *Set must be
// externally synchronised the same way a non-atomic Go map must be.
type Set struct {
	buf         wordBuffer
	last        int // largest element, or -1 when empty
	size        int // cached cardinality, or sizeInvalid to force a recompute
	modCount    int
	simulateWAH bool
	metrics     MetricsSink
}

// Option configures a Set at construction time.
type Option func(*Set)

// WithWAHCompatibility forces every run word to carry no flip bit,
// producing output that is byte-for-byte compatible with plain WAH
// compression at some cost in density.
func WithWAHCompatibility() Option {
	return func(s *Set) { s.simulateWAH = true }
}

// New returns an empty set.
func New(opts ...Option) *Set {
	s := &Set{buf: wordBuffer{last: -1}, last: -1, size: 0}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromElement returns a set containing the single element e.
func NewFromElement(e int, opts ...Option) (*Set, error) {
	s := New(opts...)
	if _, err := s.Add(e); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromElements returns a set containing every distinct value in elems.
// elems need not be sorted or deduplicated; it is copied, sorted, and
// deduplicated internally before being appended word by word, the same
// "sort then append" strategy the design notes prescribe for bulk
// construction.
func NewFromElements(elems []int, opts ...Option) (s *Set, err error) {
	defer recoverError(&err)
	s = New(opts...)
	sorted := append([]int(nil), elems...)
	sort.Ints(sorted)
	for i, e := range sorted {
		if i > 0 && e == sorted[i-1] {
			continue
		}
		s.appendElement(e)
	}
	return s, nil
}

// Clone returns an independent copy of s; mutating the clone never
// affects s and vice versa.
func (s *Set) Clone() *Set {
	return &Set{
		buf:         s.buf.clone(),
		last:        s.last,
		size:        s.size,
		simulateWAH: s.simulateWAH,
		metrics:     s.metrics,
	}
}

// IsEmpty reports whether s has no elements.
func (s *Set) IsEmpty() bool { return s.last < 0 }

// Size returns the cardinality of s, recomputing and caching it by
// scanning the word buffer if the cache was invalidated by a prior
// operation (such as an algebra result).
func (s *Set) Size() int {
	if s.size == sizeInvalid {
		s.size = s.computeSize()
	}
	return s.size
}

func (s *Set) computeSize() int {
	n := 0
	for i := 0; i <= s.buf.last; i++ {
		n += wordElementCount(s.buf.at(i))
	}
	return n
}

// wordElementCount returns how many set bits a single word represents,
// whether it is a literal or an expanded run.
func wordElementCount(w word) int {
	switch {
	case isLiteral(w):
		return literalPopcount(w)
	case isZeroRun(w):
		if flipIndex(w) >= 0 {
			return 1
		}
		return 0
	default: // one-run
		c := runCount(w)
		n := int(blockBits * (c + 1))
		if flipIndex(w) >= 0 {
			n--
		}
		return n
	}
}

// First returns the smallest element of s.
func (s *Set) First() (int, error) {
	if s.IsEmpty() {
		return 0, ErrEmptySet
	}
	it := s.Iterator()
	e, _ := it.Next()
	return e, nil
}

// Last returns the largest element of s.
func (s *Set) Last() (int, error) {
	if s.IsEmpty() {
		return 0, ErrEmptySet
	}
	return s.last, nil
}

// LastElement returns the largest element of s, or -1 if s is empty. It is
// the non-erroring counterpart of Last, for callers that already treat -1
// as "no element".
func (s *Set) LastElement() int { return s.last }

// bump increments modCount, invalidating any bit iterator created before
// this call.
func (s *Set) bump() { s.modCount++ }

// invalidateSize marks the cached cardinality as needing a recompute.
func (s *Set) invalidateSize() { s.size = sizeInvalid }

// replaceWith atomically swaps s's internals for other's, used by the
// mutation fast paths once they fall back to a full merge to compute the
// new contents.
func (s *Set) replaceWith(other *Set) {
	s.buf = other.buf
	s.last = other.last
	s.size = other.size
	s.bump()
}

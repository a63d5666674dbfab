// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import "math/bits"

// Iterator walks the elements of a Set in ascending order. It is
// invalidated by any subsequent mutation of the set it was created from,
// the same fail-fast contract java.util's iterators use; Next reports
// ErrConcurrentModification once that happens.
type Iterator struct {
	s          *Set
	modCount   int
	cursor     wordCursor
	blockIndex int
	bits       uint32
	done       bool
}

// Iterator returns a fresh ascending Iterator over s.
func (s *Set) Iterator() *Iterator {
	it := &Iterator{s: s, modCount: s.modCount}
	it.cursor = newForwardCursor(&s.buf, s.simulateWAH)
	it.loadBlock()
	return it
}

func (it *Iterator) loadBlock() {
	for !it.cursor.endOfWords() {
		it.bits = literalBits(it.cursor.current())
		if it.bits != 0 {
			return
		}
		it.cursor.advance()
		it.blockIndex++
	}
	it.done = true
}

// HasNext reports whether Next would return another element.
func (it *Iterator) HasNext() bool { return !it.done }

// Next returns the next element in ascending order.
func (it *Iterator) Next() (int, error) {
	if it.modCount != it.s.modCount {
		return 0, ErrConcurrentModification
	}
	if it.done {
		return 0, ErrNoSuchElement
	}
	tz := bits.TrailingZeros32(it.bits)
	e := it.blockIndex*blockBits + tz
	it.bits &^= uint32(1) << uint(tz)
	if it.bits == 0 {
		it.cursor.advance()
		it.blockIndex++
		it.loadBlock()
	}
	return e, nil
}

// SkipAllBefore advances the iterator, discarding elements, until the
// next call to Next would return the smallest element >= e (or the
// iterator is exhausted). It is a no-op if the cursor is already past e.
func (it *Iterator) SkipAllBefore(e int) (err error) {
	defer recoverError(&err)
	assert(it.modCount == it.s.modCount, ErrConcurrentModification)
	it.skipAllBefore(e)
	return nil
}

func (it *Iterator) skipAllBefore(e int) {
	for !it.done {
		tz := bits.TrailingZeros32(it.bits)
		if it.blockIndex*blockBits+tz >= e {
			return
		}
		it.bits &^= uint32(1) << uint(tz)
		if it.bits == 0 {
			it.cursor.advance()
			it.blockIndex++
			it.loadBlock()
		}
	}
}

// DescendingIterator walks the elements of a Set in descending order,
// with the same concurrent-modification contract as Iterator.
type DescendingIterator struct {
	s          *Set
	modCount   int
	cursor     wordCursor
	blockIndex int
	bits       uint32
	done       bool
}

// DescendingIterator returns a fresh descending iterator over s.
func (s *Set) DescendingIterator() *DescendingIterator {
	it := &DescendingIterator{s: s, modCount: s.modCount}
	if s.IsEmpty() {
		it.done = true
		return it
	}
	it.cursor = newReverseCursor(&s.buf, s.simulateWAH)
	it.blockIndex = s.last / blockBits
	it.loadBlock()
	return it
}

func (it *DescendingIterator) loadBlock() {
	for !it.cursor.endOfWords() {
		it.bits = literalBits(it.cursor.current())
		if it.bits != 0 {
			return
		}
		it.cursor.advance()
		it.blockIndex--
	}
	it.done = true
}

// HasNext reports whether Next would return another element.
func (it *DescendingIterator) HasNext() bool { return !it.done }

// Next returns the next element in descending order.
func (it *DescendingIterator) Next() (int, error) {
	if it.modCount != it.s.modCount {
		return 0, ErrConcurrentModification
	}
	if it.done {
		return 0, ErrNoSuchElement
	}
	top := blockBits - bits.LeadingZeros32(it.bits)
	e := it.blockIndex*blockBits + top
	it.bits &^= uint32(1) << uint(top)
	if it.bits == 0 {
		it.cursor.advance()
		it.blockIndex--
		it.loadBlock()
	}
	return e, nil
}

// SkipAllBefore advances the descending iterator, discarding elements,
// until the next call to Next would return the largest element <= e (or
// the iterator is exhausted). It is a no-op if the cursor is already at
// or below e.
func (it *DescendingIterator) SkipAllBefore(e int) (err error) {
	defer recoverError(&err)
	assert(it.modCount == it.s.modCount, ErrConcurrentModification)
	for !it.done {
		top := blockBits - bits.LeadingZeros32(it.bits)
		if it.blockIndex*blockBits+top <= e {
			return nil
		}
		it.bits &^= uint32(1) << uint(top)
		if it.bits == 0 {
			it.cursor.advance()
			it.blockIndex--
			it.loadBlock()
		}
	}
	return nil
}

// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import "math/bits"

// locateBlock returns the index of the word representing block blk, along
// with the number of blocks that word represents (1 for a literal, c+1
// for a run of count c). blk must be within range ([0, s.last/blockBits]).
func (s *Set) locateBlock(blk int) (idx int, blockCount int) {
	seen := 0
	for i := 0; i <= s.buf.last; i++ {
		w := s.buf.at(i)
		n := 1
		if isRun(w) {
			n = int(runCount(w)) + 1
		}
		if blk < seen+n {
			return i, n
		}
		seen += n
	}
	panic("concise: block index out of range")
}

// containsInternal reports whether e is a member of s, without validating
// e's range (callers that already know e is in range, such as the merge
// engine's single-element optimisation, use this to skip the check).
func (s *Set) containsInternal(e int) bool {
	if s.IsEmpty() || e < 0 || e > s.last {
		return false
	}
	blk, bitPos := e/blockBits, e%blockBits
	idx, _ := s.locateBlock(blk)
	w := s.buf.at(idx)
	if isLiteral(w) {
		return w&(uint32(1)<<uint(bitPos)) != 0
	}
	f := flipIndex(w)
	if blk != blockStartOf(&s.buf, idx) {
		f = -1 // only a run's first block carries its flip bit
	}
	if isOneRun(w) {
		return f != bitPos
	}
	return f == bitPos
}

// Contains reports whether e is a member of s. An out-of-range e is
// simply not a member; this never errors.
func (s *Set) Contains(e int) bool {
	if e < 0 || e > MaxElement {
		return false
	}
	return s.containsInternal(e)
}

// Add inserts e into s, reporting whether it was not already present.
func (s *Set) Add(e int) (added bool, err error) {
	defer recoverError(&err)
	assert(e >= 0 && e <= MaxElement, ErrOutOfRange)
	return s.mutateAdd(e), nil
}

// Remove deletes e from s, reporting whether it had been present.
func (s *Set) Remove(e int) (removed bool, err error) {
	defer recoverError(&err)
	assert(e >= 0 && e <= MaxElement, ErrOutOfRange)
	return s.mutateRemove(e), nil
}

// Flip toggles e's membership in s, returning its membership after the
// call.
func (s *Set) Flip(e int) (present bool, err error) {
	defer recoverError(&err)
	assert(e >= 0 && e <= MaxElement, ErrOutOfRange)
	if s.containsInternal(e) {
		s.mutateRemove(e)
		return false, nil
	}
	s.mutateAdd(e)
	return true, nil
}

// mutateAdd is Add's core: an in-place fast path when it can be proven
// safe, falling back to a full merge against a singleton otherwise (§4.7).
func (s *Set) mutateAdd(e int) bool {
	if s.IsEmpty() || e > s.last {
		s.appendElement(e)
		return true
	}
	if e == s.last {
		return false
	}

	blk, bitPos := e/blockBits, e%blockBits
	idx, _ := s.locateBlock(blk)
	w := s.buf.at(idx)

	if isLiteral(w) {
		mask := uint32(1) << uint(bitPos)
		if w&mask != 0 {
			return false
		}
		unsafe := literalPopcount(w) > blockBits-3
		if s.simulateWAH {
			unsafe = containsSingleBit(^w & 0x7fffffff)
		}
		if !unsafe {
			s.buf.set(idx, w|mask)
			s.bump()
			s.invalidateSize()
			s.compress()
			return true
		}
	} else {
		f := flipIndex(w)
		if blk != blockStartOf(&s.buf, idx) {
			f = -1 // only a run's first block carries its flip bit
		}
		present := f == bitPos
		if isOneRun(w) {
			present = f != bitPos
		}
		if present {
			return false
		}
	}

	s.replaceWith(performMerge(opOR, s, singletonOf(s, e)))
	return true
}

// mutateRemove is Remove's core, symmetric to mutateAdd.
func (s *Set) mutateRemove(e int) bool {
	if s.IsEmpty() || e > s.last {
		return false
	}

	blk, bitPos := e/blockBits, e%blockBits
	idx, _ := s.locateBlock(blk)
	w := s.buf.at(idx)

	if isLiteral(w) {
		mask := uint32(1) << uint(bitPos)
		if w&mask == 0 {
			return false
		}
		unsafe := literalPopcount(w) <= 2
		if s.simulateWAH {
			unsafe = containsSingleBit(w & 0x7fffffff)
		}
		if !unsafe {
			s.buf.set(idx, w&^mask)
			s.bump()
			s.invalidateSize()
			if e == s.last && idx == s.buf.last {
				s.recomputeLastFromLiteralRemoval(idx, w&^mask)
			}
			s.compress()
			return true
		}
	} else {
		f := flipIndex(w)
		if blk != blockStartOf(&s.buf, idx) {
			f = -1 // only a run's first block carries its flip bit
		}
		present := f == bitPos
		if isOneRun(w) {
			present = f != bitPos
		}
		if !present {
			return false
		}
	}

	s.replaceWith(performMerge(opANDNOT, s, singletonOf(s, e)))
	return true
}

// recomputeLastFromLiteralRemoval updates s.last after clearing a bit
// that was the set's top element, by finding the new top bit of the
// (now possibly empty) trailing literal.
func (s *Set) recomputeLastFromLiteralRemoval(idx int, w word) {
	if literalBits(w) == 0 {
		if idx == 0 {
			s.buf.truncate(-1)
			s.last = -1
			return
		}
		s.buf.truncate(idx - 1)
		recomputeLast(s)
		return
	}
	blockStart := blockStartOf(&s.buf, idx)
	top := blockBits - bits.LeadingZeros32(literalBits(w))
	s.last = blockStart*blockBits + top
}

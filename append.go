// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import "math/bits"

const blockBits = 31

// appendElement adds e to the tail of the set. The caller must guarantee
// e is in range and strictly greater than the current last element (or
// that the set is empty); those are the only preconditions under which
// CONCISE's append fast path is defined.
func (s *Set) appendElement(e int) {
	assert(e >= 0 && e <= MaxElement, ErrOutOfRange)
	assert(s.IsEmpty() || e > s.last, Error("append target must exceed the current last element"))

	if s.IsEmpty() {
		s.appendToEmpty(e)
	} else {
		bit := (s.last % blockBits) + (e - s.last)
		if bit < blockBits {
			s.setBitInLast(bit)
		} else {
			s.appendAcrossBlocks(bit)
		}
	}

	s.last = e
	if s.size != sizeInvalid {
		s.size++
	}
	s.bump()
	s.compress()
}

// appendToEmpty lays down the first word(s) of a fresh set holding e.
func (s *Set) appendToEmpty(e int) {
	q, r := e/blockBits, e%blockBits
	switch {
	case q == 0:
		s.buf.append(literalTag | (uint32(1) << uint(r)))
	case q == 1 && !s.simulateWAH:
		// A single skipped block is cheaper to express as a plain
		// all-zeros literal than as a one-block run in non-WAH mode.
		s.buf.append(allZerosLiteral)
		s.buf.append(literalTag | (uint32(1) << uint(r)))
	default:
		s.buf.append(makeRun(-1, false, uint32(q-1)))
		s.buf.append(literalTag | (uint32(1) << uint(r)))
	}
}

// setBitInLast sets bit position bitPos (0..30) of the current last word,
// canonicalising a one-block run back into a literal first if needed —
// the only way a run can ever be the last word is with a count of zero,
// per invariant 2.
func (s *Set) setBitInLast(bitPos int) {
	idx := s.buf.last
	w := s.buf.at(idx)
	if isRun(w) {
		w = literalOf(w)
	}
	w |= uint32(1) << uint(bitPos)
	s.buf.set(idx, w)
}

// appendAcrossBlocks handles an append that lands in a block strictly
// after the block holding the current last element. bit is the logical
// bit position measured from the start of the last element's block.
func (s *Set) appendAcrossBlocks(bit int) {
	zeroBlocks := bit/blockBits - 1
	idx := s.buf.last
	prev := s.buf.at(idx)

	if !s.simulateWAH && isLiteral(prev) && containsSingleBit(literalBits(prev)) {
		// The word about to stop being the tail held exactly one
		// element; canonicalise it into a run-with-flip so it no
		// longer occupies a full word for a single bit, absorbing
		// any all-zero blocks between it and the new element.
		tz := bits.TrailingZeros32(literalBits(prev))
		s.buf.set(idx, makeRun(tz, false, uint32(zeroBlocks)))
	} else if zeroBlocks == 1 {
		s.buf.append(allZerosLiteral)
	} else if zeroBlocks > 1 {
		s.buf.append(makeRun(-1, false, uint32(zeroBlocks-1)))
	}

	s.buf.append(allZerosLiteral)
	s.setBitInLast(bit % blockBits)
}

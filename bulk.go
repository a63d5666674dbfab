// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

// AddAll inserts every element of other into s.
func (s *Set) AddAll(other *Set) {
	s.replaceWith(mergeOp(opOR, s, other))
}

// RemoveAll deletes every element of other from s.
func (s *Set) RemoveAll(other *Set) {
	s.replaceWith(mergeOp(opANDNOT, s, other))
}

// RetainAll removes every element of s not also present in other.
func (s *Set) RetainAll(other *Set) {
	s.replaceWith(mergeOp(opAND, s, other))
}

// Clear removes every element of s, preserving its WAH-compatibility
// mode.
func (s *Set) Clear() {
	s.buf.clear()
	s.last = -1
	s.size = 0
	s.bump()
}

// Fill adds every integer in [from, to] to s. Reversed or out-of-range
// endpoints are an OutOfRange error (§7: "range endpoints reversed" is
// grouped with plain out-of-range elements, not InvalidArgument, which is
// reserved for ContainsAtLeast's k and power-set bounds).
func (s *Set) Fill(from, to int) (err error) {
	defer recoverError(&err)
	assert(from >= 0 && to <= MaxElement && from <= to, ErrOutOfRange)
	s.replaceWith(mergeOp(opOR, s, rangeSet(from, to, s.simulateWAH)))
	return nil
}

// ClearRange removes every integer in [from, to] from s.
func (s *Set) ClearRange(from, to int) (err error) {
	defer recoverError(&err)
	assert(from >= 0 && to <= MaxElement && from <= to, ErrOutOfRange)
	s.replaceWith(mergeOp(opANDNOT, s, rangeSet(from, to, s.simulateWAH)))
	return nil
}

// rangeSet builds the set {from, from+1, ..., to} directly rather than by
// appending element by element, using a run word to span whatever whole
// blocks fall entirely inside the range.
func rangeSet(from, to int, wah bool) *Set {
	s := New()
	s.simulateWAH = wah
	s.size = to - from + 1

	fromBlk, fromOff := from/blockBits, from%blockBits
	toBlk, toOff := to/blockBits, to%blockBits

	if fromBlk == toBlk {
		mask := uint32(0)
		for b := fromOff; b <= toOff; b++ {
			mask |= uint32(1) << uint(b)
		}
		if fromBlk > 0 {
			s.buf.append(makeRun(-1, false, uint32(fromBlk-1)))
		}
		s.buf.append(literalTag | mask)
		s.last = to
		s.compress()
		return s
	}

	if fromBlk > 0 {
		s.buf.append(makeRun(-1, false, uint32(fromBlk-1)))
	}
	headMask := uint32(0)
	for b := fromOff; b < blockBits; b++ {
		headMask |= uint32(1) << uint(b)
	}
	s.buf.append(literalTag | headMask)
	s.compress()

	middleBlocks := toBlk - fromBlk - 1
	if middleBlocks > 0 {
		if headMask == 0x7fffffff {
			// The head block was itself all ones: fold it directly into
			// the middle run instead of leaving an unmerged adjacent pair.
			s.buf.set(s.buf.last, makeRun(-1, true, uint32(middleBlocks)))
		} else {
			s.buf.append(makeRun(-1, true, uint32(middleBlocks-1)))
		}
		s.compress()
	}

	tailMask := uint32(0)
	for b := 0; b <= toOff; b++ {
		tailMask |= uint32(1) << uint(b)
	}
	s.buf.append(literalTag | tailMask)
	s.last = to
	s.compress()
	return s
}

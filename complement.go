// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

// Complement replaces s, in place, with its complement relative to the
// universe [0, last] implied by its own largest element (§4.8). An empty
// set has no universe to complement and is left unchanged.
func (s *Set) Complement() {
	if s.IsEmpty() {
		return
	}
	origLast := s.last

	for i := 0; i <= s.buf.last; i++ {
		s.buf.set(i, negateWord(s.buf.at(i)))
	}

	lastBlk := origLast / blockBits
	lastOff := origLast % blockBits
	idx, _ := s.locateBlock(lastBlk)
	blockStart := blockStartOf(&s.buf, idx)
	offsetWithin := lastBlk - blockStart

	w := s.buf.at(idx)
	var blockLiteral word
	if isLiteral(w) || offsetWithin == 0 {
		blockLiteral = literalOf(w)
	} else if isOneRun(w) {
		blockLiteral = allOnesLiteral
	} else {
		blockLiteral = allZerosLiteral
	}

	keepMask := uint32(1)<<uint(lastOff+1) - 1
	tail := literalTag | (literalBits(blockLiteral) & keepMask)

	if idx == 0 {
		s.buf.truncate(-1)
	} else {
		s.buf.truncate(idx - 1)
	}
	if offsetWithin > 0 {
		s.buf.append(makeRun(flipIndex(w), isOneRun(w), uint32(offsetWithin-1)))
		s.compress()
	}
	s.buf.append(tail)
	s.compress()
	trimZeros(s)

	s.bump()
	s.invalidateSize()
	if s.buf.empty() {
		s.last = -1
		return
	}
	recomputeLast(s)
}

// negateWord flips a word's represented bits: a literal's low 31 bits are
// inverted, a run's kind bit toggles (its flip and count fields, which sit
// below the kind bit, are untouched).
func negateWord(w word) word {
	if isLiteral(w) {
		return (w ^ 0x7fffffff) | literalTag
	}
	return w ^ oneRunTag
}

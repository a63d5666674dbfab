// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import "math/bits"

// compress restores the compression fixpoint (invariant 3) after a new
// literal has been written as the tail of the buffer. It folds the tail
// into the previous word when doing so preserves the represented set:
//
//   - a literal that is all-zeros or all-ones merges into a run of the
//     same kind immediately before it by incrementing that run's block
//     count; if the previous word is a literal that is all of that kind
//     too, or differs from it in a single bit (which becomes the flip; not
//     in WAH mode), the pair becomes a new run of count 1 (two blocks);
//   - a lone all-ones literal that is the whole buffer becomes a
//     flip-free one-run of count 0;
//   - once a run-without-flip has been produced or extended this way, it
//     may itself cascade into an identical-kind run immediately before it
//     (invariant 6: a flip-free run absorbs a preceding run of the same
//     kind) — a run that carries a flip bit can never cascade further,
//     since a single word can carry only one exceptional bit.
//
// The loop below keeps folding until neither condition applies, which is
// the only way invariant 3's fixpoint can hold after every call.
func (s *Set) compress() {
	folded := 0
	if s.metrics != nil {
		defer func() {
			if folded > 0 {
				s.metrics.CompressObserved(folded)
			}
		}()
	}
	if s.buf.last == 0 && s.buf.at(0) == allOnesLiteral {
		// A lone full block is held as a flip-free one-run of count 0.
		s.buf.set(0, makeRun(-1, true, 0))
		return
	}
	for s.buf.last > 0 {
		idx := s.buf.last
		tail := s.buf.at(idx)
		pIdx := idx - 1
		p := s.buf.at(pIdx)

		if !isLiteral(tail) {
			if !isRunWithoutFlip(tail) {
				return
			}
			if isRun(p) && isOneRun(p) == isOneRun(tail) {
				s.buf.set(pIdx, makeRun(flipIndex(p), isOneRun(p), runCount(p)+runCount(tail)+1))
				s.buf.truncate(pIdx)
				folded++
				continue
			}
			return
		}

		var oneKind bool
		switch literalBits(tail) {
		case 0:
			oneKind = false
		case 0x7fffffff:
			oneKind = true
		default:
			return
		}

		if isRun(p) {
			if isOneRun(p) == oneKind {
				s.buf.set(pIdx, p+1)
				s.buf.truncate(pIdx)
				folded++
				continue
			}
			return
		}

		var b uint32
		if oneKind {
			b = ^p & 0x7fffffff
		} else {
			b = p & 0x7fffffff
		}
		switch {
		case b == 0:
			s.buf.set(pIdx, makeRun(-1, oneKind, 1))
			s.buf.truncate(pIdx)
			folded++
			continue
		case containsSingleBit(b) && !s.simulateWAH:
			s.buf.set(pIdx, makeRun(bits.TrailingZeros32(b), oneKind, 1))
			s.buf.truncate(pIdx)
			folded++
			return
		default:
			return
		}
	}
}

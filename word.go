// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import "math/bits"

// A word is the atomic unit of a compressed set: a plain 31-bit literal
// block or a run of identical blocks carrying at most one exceptional
// "flip" bit. The top two bits of the word select the variant:
//
//	1_xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx   literal, low 31 bits are the block
//	00_fffff_ccccccccccccccccccccccccc  zero-run, f is flip+1, c is extra blocks
//	01_fffff_ccccccccccccccccccccccccc  one-run,  f is flip+1, c is extra blocks
//
// All functions here are pure and treat the word as an opaque uint32;
// nothing else in the package pokes at the bit layout directly.
type word = uint32

const (
	literalTag = uint32(1) << 31
	oneRunTag  = uint32(1) << 30

	flipShift = 25
	flipBits  = uint32(0x1f) // 5 bits, values 0..31
	countBits = uint32(0x1ffffff) // 25 bits

	allZerosLiteral = literalTag
	allOnesLiteral  = ^uint32(0)
)

func isLiteral(w word) bool { return w&literalTag != 0 }
func isRun(w word) bool     { return w&literalTag == 0 }
func isOneRun(w word) bool  { return w&literalTag == 0 && w&oneRunTag != 0 }
func isZeroRun(w word) bool { return w&literalTag == 0 && w&oneRunTag == 0 }

// isRunWithoutFlip reports whether w is a run word with no exceptional bit.
func isRunWithoutFlip(w word) bool {
	return isRun(w) && (w>>flipShift)&flipBits == 0
}

// runCount returns the number of 31-bit blocks beyond the first that a run
// word represents. Only meaningful when isRun(w).
func runCount(w word) uint32 {
	return w & countBits
}

// flipIndex returns the 0-based bit position of the run's exceptional bit,
// or -1 if the run carries none. Only meaningful when isRun(w).
func flipIndex(w word) int {
	f := (w >> flipShift) & flipBits
	if f == 0 {
		return -1
	}
	return int(f - 1)
}

// literalBits returns the low 31 payload bits of a literal word.
func literalBits(w word) uint32 {
	return w &^ literalTag
}

// literalPopcount returns the number of set bits in a literal word's block.
func literalPopcount(w word) int {
	return bits.OnesCount32(literalBits(w))
}

// containsSingleBit reports whether exactly one bit of v is set.
func containsSingleBit(v uint32) bool {
	return v != 0 && v&(v-1) == 0
}

// literalOf returns the 31-bit block (tagged as a literal) represented by
// the first block of w. For a literal, w itself. For a zero-run, all zeros
// except the flip bit if any. For a one-run, all ones except the flip bit
// if any.
func literalOf(w word) word {
	if isLiteral(w) {
		return w
	}
	f := (w >> flipShift) & flipBits
	if isZeroRun(w) {
		if f == 0 {
			return allZerosLiteral
		}
		return allZerosLiteral | (uint32(1) << (f - 1))
	}
	if f == 0 {
		return allOnesLiteral
	}
	return allOnesLiteral &^ (uint32(1) << (f - 1))
}

// reverseLiteralOf returns the block at the *tail* of a run word: for
// c == 0 the run has only one block, so it is identical to literalOf; for
// c > 0 the flip bit (which only ever lives in the first block) does not
// apply and the trailing block is a plain all-zeros or all-ones literal.
// Callers in WAH-compatibility mode must use literalOf instead, since WAH
// runs never carry a flip bit and have no distinguished first block.
func reverseLiteralOf(w word) word {
	if isLiteral(w) || runCount(w) == 0 {
		return literalOf(w)
	}
	if isZeroRun(w) {
		return allZerosLiteral
	}
	return allOnesLiteral
}

// makeRun assembles a run word. flip is the 0-based bit position of the
// exceptional bit, or -1 for none. c is the number of blocks beyond the
// first.
func makeRun(flip int, oneKind bool, c uint32) word {
	w := c & countBits
	if flip >= 0 {
		w |= (uint32(flip) + 1) << flipShift
	}
	if oneKind {
		w |= oneRunTag
	}
	return w
}

// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import "math/bits"

// Get returns the i-th smallest element of s (0-indexed).
func (s *Set) Get(i int) (e int, err error) {
	defer recoverError(&err)
	assert(i >= 0 && i < s.Size(), ErrOutOfRange)

	cum, blockStart := 0, 0
	for wi := 0; wi <= s.buf.last; wi++ {
		w := s.buf.at(wi)
		cnt := wordElementCount(w)
		if i < cum+cnt {
			return elementAtWordRank(w, blockStart, i-cum), nil
		}
		cum += cnt
		if isLiteral(w) {
			blockStart++
		} else {
			blockStart += int(runCount(w)) + 1
		}
	}
	panic("concise: rank accounting is inconsistent with Size")
}

// elementAtWordRank returns the element with rank k (0-based) among the
// elements word w represents, given the index of its first 31-bit block.
func elementAtWordRank(w word, blockStart, k int) int {
	if isLiteral(w) {
		v := literalBits(w)
		for n := 0; n < k; n++ {
			v &^= uint32(1) << uint(bits.TrailingZeros32(v))
		}
		return blockStart*blockBits + bits.TrailingZeros32(v)
	}

	f := flipIndex(w)
	if isZeroRun(w) {
		// The only element a zero-run can hold is its flip bit, at rank 0.
		return blockStart*blockBits + f
	}

	// one-run: block 0 holds either all 31 bits or all but the flip bit;
	// every following block is uniformly full.
	if f < 0 {
		blockOffset := k / blockBits
		bitPos := k % blockBits
		return (blockStart+blockOffset)*blockBits + bitPos
	}
	if k < blockBits-1 {
		bitPos := k
		if bitPos >= f {
			bitPos++
		}
		return blockStart*blockBits + bitPos
	}
	k -= blockBits - 1
	blockOffset := 1 + k/blockBits
	bitPos := k % blockBits
	return (blockStart+blockOffset)*blockBits + bitPos
}

// IndexOf returns the rank (0-based position in ascending order) of e
// within s, or -1 if e is not a member.
func (s *Set) IndexOf(e int) (rank int, err error) {
	defer recoverError(&err)
	assert(e >= 0 && e <= MaxElement, ErrOutOfRange)
	if !s.containsInternal(e) {
		return -1, nil
	}
	if e == 0 {
		return 0, nil
	}
	return combinedSize(opAND, s, rangeSet(0, e-1, s.simulateWAH)), nil
}

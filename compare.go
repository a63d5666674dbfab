// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

// Equals reports whether s and other contain exactly the same elements,
// independent of their WAH-compatibility mode.
func (s *Set) Equals(other *Set) bool {
	if s.last != other.last {
		return false
	}
	return combinedSize(opXOR, s, other) == 0
}

// CompareTo orders sets by their highest differing element: whichever set
// holds the larger value at the first point two descending walks
// disagree is the greater set; if one walk runs out of elements first
// (having matched everywhere above its own maximum), the set that still
// has more elements left to yield is considered greater.
func (s *Set) CompareTo(other *Set) int {
	as := s.DescendingIterator()
	bs := other.DescendingIterator()
	for as.HasNext() && bs.HasNext() {
		a, _ := as.Next()
		b, _ := bs.Next()
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	switch {
	case as.HasNext():
		return 1
	case bs.HasNext():
		return -1
	default:
		return 0
	}
}

// Hash returns a hash code derived from s's word sequence, stable across
// equal sets built through different mutation paths since canonical form
// guarantees a unique word sequence per represented set.
func (s *Set) Hash() uint32 {
	h := uint32(1)
	for i := 0; i <= s.buf.last; i++ {
		h = h*31 + s.buf.at(i)
	}
	return h
}

// BitmapCompressionRatio returns the ratio of this set's compressed word
// storage to the number of 32-bit words a naive, uncompressed bitmap
// spanning [0, last] would require. Values below 1 indicate the
// compressed form is smaller.
func (s *Set) BitmapCompressionRatio() float64 {
	if s.IsEmpty() {
		return 0
	}
	naiveWords := (s.last + 1 + 31) / 32
	return float64(s.buf.len()) / float64(naiveWords)
}

// CollectionCompressionRatio returns the ratio of this set's compressed
// word storage to the size a plain collection storing one 32-bit integer
// per element would require.
func (s *Set) CollectionCompressionRatio() float64 {
	n := s.Size()
	if n == 0 {
		return 0
	}
	return float64(s.buf.len()) / float64(n)
}

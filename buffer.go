// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

// wordBuffer is a growable vector of words with a distinguished
// last-used index, grown by amortised doubling. It is never shared
// between sets: Clone always performs a full copy.
type wordBuffer struct {
	words []word
	last  int // index of the last used word, -1 when empty
}

func newWordBuffer(capHint int) wordBuffer {
	if capHint < 1 {
		capHint = 1
	}
	return wordBuffer{words: make([]word, capHint), last: -1}
}

func (b *wordBuffer) len() int { return b.last + 1 }

func (b *wordBuffer) empty() bool { return b.last < 0 }

// at returns the word at index i, which must be <= b.last.
func (b *wordBuffer) at(i int) word { return b.words[i] }

// set overwrites the word at index i, which must be <= b.last.
func (b *wordBuffer) set(i int, w word) { b.words[i] = w }

// ensure grows the backing array so that index i is addressable.
func (b *wordBuffer) ensure(i int) {
	if i < len(b.words) {
		return
	}
	n := len(b.words) * 2
	if n <= i {
		n = i + 1
	}
	grown := make([]word, n)
	copy(grown, b.words)
	b.words = grown
}

// append grows the logical length by one and writes w at the new tail.
func (b *wordBuffer) append(w word) {
	b.last++
	b.ensure(b.last)
	b.words[b.last] = w
}

// truncate drops the tail so that the new last-used index is i.
func (b *wordBuffer) truncate(i int) { b.last = i }

// compact shrinks the backing array to exactly b.len() words.
func (b *wordBuffer) compact() {
	n := b.len()
	if n == len(b.words) {
		return
	}
	if n <= 0 {
		b.words = nil
		return
	}
	shrunk := make([]word, n)
	copy(shrunk, b.words[:n])
	b.words = shrunk
}

// clear drops the buffer entirely.
func (b *wordBuffer) clear() {
	b.words = nil
	b.last = -1
}

// clone returns an independent copy of b.
func (b *wordBuffer) clone() wordBuffer {
	if b.empty() {
		return wordBuffer{words: nil, last: -1}
	}
	cp := make([]word, b.len())
	copy(cp, b.words[:b.len()])
	return wordBuffer{words: cp, last: b.last}
}

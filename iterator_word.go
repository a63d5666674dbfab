// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

// wordCursor walks the word buffer as a logical stream of 31-bit literal
// blocks, lazily "expanding" run words by decrementing an in-cursor block
// counter instead of materialising every block up front.
type wordCursor struct {
	words   *wordBuffer
	wah     bool
	reverse bool
	index   int  // current word index into words
	word    word // working copy of words[index]; its block count is
	             // decremented as blocks of a run are consumed
	literal word // the 31-bit block the cursor currently yields
	done    bool
}

// newForwardCursor returns a cursor positioned at the first block.
func newForwardCursor(buf *wordBuffer, wah bool) wordCursor {
	c := wordCursor{words: buf, wah: wah}
	if buf.empty() {
		c.done = true
		return c
	}
	c.index = 0
	c.word = buf.at(0)
	c.literal = literalOf(c.word)
	return c
}

// newReverseCursor returns a cursor positioned at the last block.
func newReverseCursor(buf *wordBuffer, wah bool) wordCursor {
	c := wordCursor{words: buf, wah: wah, reverse: true}
	if buf.empty() {
		c.done = true
		return c
	}
	c.index = buf.last
	c.word = buf.at(buf.last)
	c.literal = c.firstLiteral(c.word)
	return c
}

// firstLiteral returns the block a freshly-visited word yields: for a
// reverse, non-WAH cursor that is the *trailing* block of a run (the flip
// bit lives only in the first block); every other case is literalOf.
func (c *wordCursor) firstLiteral(w word) word {
	if c.reverse && !c.wah {
		return reverseLiteralOf(w)
	}
	return literalOf(w)
}

// endOfWords reports whether every block has been consumed.
func (c *wordCursor) endOfWords() bool { return c.done }

// hasMoreLiterals reports whether advance would yield another block.
func (c *wordCursor) hasMoreLiterals() bool {
	if c.done {
		return false
	}
	if isRun(c.word) && runCount(c.word) > 0 {
		return true
	}
	if c.reverse {
		return c.index > 0
	}
	return c.index < c.words.last
}

// current returns the 31-bit literal block the cursor is positioned at.
func (c *wordCursor) current() word { return c.literal }

// advance moves the cursor to the next block in iteration order.
func (c *wordCursor) advance() {
	if isLiteral(c.word) || runCount(c.word) == 0 {
		if c.reverse {
			c.index--
			if c.index < 0 {
				c.done = true
				return
			}
		} else {
			c.index++
			if c.index > c.words.last {
				c.done = true
				return
			}
		}
		c.word = c.words.at(c.index)
		c.literal = c.firstLiteral(c.word)
		return
	}
	// Still inside a multi-block run: consume one more block of it.
	oneKind := isOneRun(c.word)
	if c.reverse {
		// A reverse cursor reaches the run's first block last, and only
		// that block carries the flip bit: the flip is kept in the word
		// until the count runs out, and firstLiteral then yields it.
		c.word = makeRun(flipIndex(c.word), oneKind, runCount(c.word)-1)
		c.literal = c.firstLiteral(c.word)
		return
	}
	// Once the first block has been yielded, a run-with-flip's exceptional
	// bit is behind a forward cursor, so every following block is the
	// plain trailing pattern.
	c.word = makeRun(-1, oneKind, runCount(c.word)-1)
	if oneKind {
		c.literal = allOnesLiteral
	} else {
		c.literal = allZerosLiteral
	}
}

// skipRun reports whether both cursors currently sit on a run-without-flip
// word and, if so, bulk-skips min(c1, c2) trailing blocks from each without
// visiting them one by one. This lets the merge engine fast-forward through
// large runs in O(1) instead of O(blocks).
//
// The two runs need not share a kind: every block of a run-without-flip is
// identical, so for the whole overlap the combined per-block result of any
// bitwise operator is constant regardless of whether a and b agree on
// all-zeros or all-ones — e.g. a long zero-run ANDed against a long one-run
// is just as uniform (all zero) over their overlap as two matching
// zero-runs would be. Callers derive that constant from the block they
// already combined before calling skipRun (e.g. via the result word's own
// kind, or its popcount); skipRun only needs to report how far both
// cursors can jump.
func skipRun(a, b *wordCursor) (skipped uint32, ok bool) {
	if a.done || b.done {
		return 0, false
	}
	if !isRunWithoutFlip(a.word) || !isRunWithoutFlip(b.word) {
		return 0, false
	}
	ca, cb := runCount(a.word), runCount(b.word)
	n := ca
	if cb < n {
		n = cb
	}
	if n == 0 {
		return 0, false
	}
	a.word = makeRun(-1, isOneRun(a.word), ca-n)
	b.word = makeRun(-1, isOneRun(b.word), cb-n)
	return n, true
}

// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

// IntersectionSize returns len(s ∩ other) without materialising the
// intersection.
func (s *Set) IntersectionSize(other *Set) int {
	return combinedSize(opAND, s, other)
}

// ContainsAll reports whether every element of other is also in s.
func (s *Set) ContainsAll(other *Set) bool {
	return combinedSize(opANDNOT, other, s) == 0
}

// ContainsAny reports whether s and other share at least one element.
func (s *Set) ContainsAny(other *Set) bool {
	return combinedSize(opAND, s, other) > 0
}

// ContainsAtLeast reports whether s and other share at least k elements.
// k must be at least 1.
func (s *Set) ContainsAtLeast(other *Set, k int) (result bool, err error) {
	defer recoverError(&err)
	assert(k >= 1, ErrInvalidArgument)
	return combinedSize(opAND, s, other) >= k, nil
}

// ComplementSize returns the cardinality s.Complement() would have,
// without performing the negation.
func (s *Set) ComplementSize() int {
	if s.IsEmpty() {
		return 0
	}
	return (s.last + 1) - s.Size()
}

// combinedSize computes the cardinality of op(a, b) by walking both
// operands word by word (bulk-skipping matching runs), the same shape as
// performMerge but without allocating a result buffer.
func combinedSize(op Operator, a, b *Set) int {
	if a.IsEmpty() || b.IsEmpty() {
		return emptyOperandSize(op, a, b)
	}

	opFn := operatorFunc(op)
	wah := a.simulateWAH
	ca := newForwardCursor(&a.buf, wah)
	cb := newForwardCursor(&b.buf, wah)

	total := 0
	for !ca.endOfWords() && !cb.endOfWords() {
		w := opFn(ca.current(), cb.current())
		pc := literalPopcount(w)
		total += pc
		if skipped, ok := skipRun(&ca, &cb); ok && skipped > 0 {
			total += pc * int(skipped)
		}
		ca.advance()
		cb.advance()
	}

	switch op {
	case opOR, opXOR:
		if !ca.endOfWords() {
			total += cursorTailElementCount(&ca)
		} else if !cb.endOfWords() {
			total += cursorTailElementCount(&cb)
		}
	case opANDNOT:
		if !ca.endOfWords() {
			total += cursorTailElementCount(&ca)
		}
	}
	return total
}

func emptyOperandSize(op Operator, a, b *Set) int {
	switch op {
	case opAND:
		return 0
	case opOR, opXOR:
		if a.IsEmpty() {
			return b.Size()
		}
		return a.Size()
	case opANDNOT:
		if a.IsEmpty() {
			return 0
		}
		return a.Size()
	}
	panic("concise: unknown operator")
}

// cursorTailElementCount sums the elements remaining in a cursor's
// unvisited words, including its partially-consumed current word.
func cursorTailElementCount(c *wordCursor) int {
	if c.endOfWords() {
		return 0
	}
	total := wordElementCount(c.word)
	for i := c.index + 1; i <= c.words.last; i++ {
		total += wordElementCount(c.words.at(i))
	}
	return total
}

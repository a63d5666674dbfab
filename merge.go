// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import "math/bits"

// Operator selects the bitwise combination rule the merge engine applies
// to each pair of literal blocks. It is reported to a MetricsSink so a
// caller-supplied sink can distinguish which algebra entrypoint ran.
type Operator int

const (
	opAND Operator = iota
	opOR
	opXOR
	opANDNOT
)

const (
	// OpAND identifies Intersection.
	OpAND = opAND
	// OpOR identifies Union.
	OpOR = opOR
	// OpXOR identifies SymmetricDifference.
	OpXOR = opXOR
	// OpANDNOT identifies Difference.
	OpANDNOT = opANDNOT
)

func (op Operator) String() string {
	switch op {
	case opAND:
		return "AND"
	case opOR:
		return "OR"
	case opXOR:
		return "XOR"
	case opANDNOT:
		return "ANDNOT"
	default:
		return "unknown"
	}
}

func operatorFunc(op Operator) func(a, b word) word {
	switch op {
	case opAND:
		return func(a, b word) word { return a & b }
	case opOR:
		return func(a, b word) word { return a | b }
	case opXOR:
		return func(a, b word) word { return (a ^ b) | literalTag }
	case opANDNOT:
		return func(a, b word) word { return (a &^ b) | literalTag }
	}
	panic("concise: unknown operator")
}

// sameWAH returns an Option that copies a's WAH-compatibility mode and
// metrics sink onto a freshly constructed Set.
func sameWAH(a *Set) Option {
	return func(s *Set) {
		s.simulateWAH = a.simulateWAH
		s.metrics = a.metrics
	}
}

// Union returns a fresh set containing every element of s or other.
func (s *Set) Union(other *Set) *Set { return mergeOp(opOR, s, other) }

// Intersection returns a fresh set containing every element in both s and
// other.
func (s *Set) Intersection(other *Set) *Set { return mergeOp(opAND, s, other) }

// Difference returns a fresh set containing the elements of s that are
// not in other.
func (s *Set) Difference(other *Set) *Set { return mergeOp(opANDNOT, s, other) }

// SymmetricDifference returns a fresh set containing the elements that
// are in exactly one of s and other.
func (s *Set) SymmetricDifference(other *Set) *Set { return mergeOp(opXOR, s, other) }

// mergeOp is the funnel every algebra entrypoint dispatches through: it
// applies the empty-operand rule, the single-element optimisation, and
// otherwise runs the general dual-cursor merge.
func mergeOp(op Operator, a, b *Set) *Set {
	if a.IsEmpty() || b.IsEmpty() {
		return emptyOperandResult(op, a, b)
	}
	if e, ok := singletonElement(b); ok {
		return singletonMerge(op, a, e)
	}
	return performMerge(op, a, b)
}

func emptyOperandResult(op Operator, a, b *Set) *Set {
	switch op {
	case opAND:
		return New(sameWAH(a))
	case opOR, opXOR:
		if a.IsEmpty() {
			return b.Clone()
		}
		return a.Clone()
	case opANDNOT:
		return a.Clone()
	}
	panic("concise: unknown operator")
}

// singletonElement reports whether s is known, by its structure alone
// (no cardinality scan needed), to hold exactly one element, returning
// that element.
func singletonElement(s *Set) (int, bool) {
	if s.buf.last != 0 {
		return 0, false
	}
	w := s.buf.at(0)
	if !isLiteral(w) || literalPopcount(w) != 1 {
		return 0, false
	}
	return s.last, true
}

// singletonMerge applies op against a one-element operand without paying
// for a full cursor-based merge.
func singletonMerge(op Operator, a *Set, e int) *Set {
	res := a.Clone()
	switch op {
	case opAND:
		if a.containsInternal(e) {
			return singletonOf(a, e)
		}
		return New(sameWAH(a))
	case opOR:
		res.mutateAdd(e)
		return res
	case opANDNOT:
		res.mutateRemove(e)
		return res
	case opXOR:
		if a.containsInternal(e) {
			res.mutateRemove(e)
		} else {
			res.mutateAdd(e)
		}
		return res
	}
	panic("concise: unknown operator")
}

// singletonOf builds a fresh one-element set sharing a's WAH mode.
func singletonOf(a *Set, e int) *Set {
	s := New(sameWAH(a))
	s.appendElement(e)
	return s
}

// performMerge is the general dual-cursor merge algorithm (§4.6): it
// walks both operands in lock-step, combining literal blocks with opFn,
// compressing the result after every append, and bulk-skipping matching
// runs so the whole pass costs O(|a|+|b|) word steps rather than
// O(elements) bit steps.
func performMerge(op Operator, a, b *Set) *Set {
	wah := a.simulateWAH
	res := &Set{buf: newWordBuffer(mergeCapacity(a, b)), last: -1, size: sizeInvalid, simulateWAH: wah, metrics: a.metrics}
	opFn := operatorFunc(op)

	ca := newForwardCursor(&a.buf, wah)
	cb := newForwardCursor(&b.buf, wah)

	for !ca.endOfWords() && !cb.endOfWords() {
		w := opFn(ca.current(), cb.current())
		before := res.buf.last
		res.buf.append(w)
		res.compress()
		if res.buf.last < before+1 {
			// The appended literal folded into a run: see whether both
			// cursors are sitting on further run-without-flip words (of
			// either kind — see skipRun) that extend the same run count
			// without visiting their blocks one by one.
			if skipped, ok := skipRun(&ca, &cb); ok && skipped > 0 {
				tailIdx := res.buf.last
				tail := res.buf.at(tailIdx)
				res.buf.set(tailIdx, makeRun(flipIndex(tail), isOneRun(tail), runCount(tail)+skipped))
			}
		}
		ca.advance()
		cb.advance()
	}

	switch op {
	case opOR, opXOR:
		if !ca.endOfWords() {
			copyCursorTail(res, &ca)
		} else if !cb.endOfWords() {
			copyCursorTail(res, &cb)
		}
	case opANDNOT:
		if !ca.endOfWords() {
			copyCursorTail(res, &ca)
		}
	case opAND:
		// Neither remainder can contribute to an intersection.
	}

	trimZeros(res)
	if res.buf.empty() {
		res = New(sameWAH(a))
	} else {
		recomputeLast(res)
	}
	if a.metrics != nil {
		a.metrics.MergeObserved(op, a.buf.len(), b.buf.len(), res.buf.len())
	}
	return res
}

func mergeCapacity(a, b *Set) int {
	lastMax := a.last
	if b.last > lastMax {
		lastMax = b.last
	}
	byRange := lastMax/blockBits + 2
	byWords := a.buf.len() + b.buf.len() + 3
	if byRange < byWords {
		return byRange
	}
	return byWords
}

// copyCursorTail appends whatever the cursor has not yet visited
// (including the partially-consumed current word) directly onto res,
// compressing at each seam. This is the "exactly one cursor may still
// have literals" tail copy; working a word at a time (rather than a
// block at a time) keeps it within the same O(words) budget as the main
// loop even when the remainder is one very long run.
func copyCursorTail(res *Set, c *wordCursor) {
	if c.endOfWords() {
		return
	}
	res.buf.append(c.word)
	res.compress()
	for i := c.index + 1; i <= c.words.last; i++ {
		res.buf.append(c.words.at(i))
		res.compress()
	}
	c.done = true
}

// trimZeros removes a trailing zero-run or all-zeros literal (invariant
// 2 forbids either from ending a representation), folding a trailing
// zero-run's flip bit into a plain single-bit literal if it had one.
func trimZeros(res *Set) {
	for !res.buf.empty() {
		idx := res.buf.last
		w := res.buf.at(idx)
		if isLiteral(w) {
			if literalBits(w) == 0 {
				res.buf.truncate(idx - 1)
				continue
			}
			return
		}
		if isZeroRun(w) {
			f := flipIndex(w)
			if f < 0 {
				res.buf.truncate(idx - 1)
				continue
			}
			res.buf.set(idx, literalTag|(uint32(1)<<uint(f)))
			return
		}
		return // one-run: a legal trailing word
	}
}

// blockStartOf returns the index of the first 31-bit block represented
// by words[idx], i.e. the sum of the block counts of every word before
// it.
func blockStartOf(buf *wordBuffer, idx int) int {
	total := 0
	for i := 0; i < idx; i++ {
		w := buf.at(i)
		if isLiteral(w) {
			total++
		} else {
			total += int(runCount(w)) + 1
		}
	}
	return total
}

// recomputeLast derives res.last from its trailing word after an algebra
// operation invalidates the incrementally-tracked value.
func recomputeLast(res *Set) {
	idx := res.buf.last
	w := res.buf.at(idx)
	blockStart := blockStartOf(&res.buf, idx)
	if isLiteral(w) {
		// top is the 0-indexed position of the highest set bit.
		top := blockBits - bits.LeadingZeros32(literalBits(w))
		res.last = blockStart*blockBits + top
		return
	}
	c := runCount(w)
	res.last = blockStart*blockBits + blockBits*(int(c)+1) - 1
	if c == 0 && flipIndex(w) == blockBits-1 {
		// The run's only block has its top bit flipped off.
		res.last--
	}
}

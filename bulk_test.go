// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import "testing"

func TestAddAllRemoveAllRetainAll(t *testing.T) {
	a := setFrom(t, []int{1, 2, 3, 4, 5})
	b := setFrom(t, []int{3, 4, 5, 6, 7})

	union := a.Clone()
	union.AddAll(b)
	checkElements(t, "AddAll", union, []int{1, 2, 3, 4, 5, 6, 7})

	diff := a.Clone()
	diff.RemoveAll(b)
	checkElements(t, "RemoveAll", diff, []int{1, 2})

	retain := a.Clone()
	retain.RetainAll(b)
	checkElements(t, "RetainAll", retain, []int{3, 4, 5})
}

func TestClear(t *testing.T) {
	a := setFrom(t, []int{1, 2, 3})
	a.Clear()
	if !a.IsEmpty() || a.Size() != 0 {
		t.Errorf("Clear did not reset the set")
	}
	if _, err := a.First(); err != ErrEmptySet {
		t.Errorf("First() on cleared set err = %v, want ErrEmptySet", err)
	}
}

func TestFillAndClearRange(t *testing.T) {
	a := New()
	if err := a.Fill(10, 20); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	want := make([]int, 0, 11)
	for e := 10; e <= 20; e++ {
		want = append(want, e)
	}
	checkElements(t, "Fill", a, want)

	if err := a.ClearRange(12, 15); err != nil {
		t.Fatalf("ClearRange: %v", err)
	}
	checkElements(t, "ClearRange", a, []int{10, 11, 16, 17, 18, 19, 20})
}

func TestFillAcrossManyBlocks(t *testing.T) {
	a := New()
	if err := a.Fill(5, 200); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	want := make([]int, 0, 196)
	for e := 5; e <= 200; e++ {
		want = append(want, e)
	}
	checkElements(t, "Fill across blocks", a, want)
	noAdjacentMergeable(t, "Fill across blocks", a)
}

func TestFillInvalidRange(t *testing.T) {
	a := New()
	if err := a.Fill(10, 5); err != ErrOutOfRange {
		t.Errorf("Fill(10,5) err = %v, want ErrOutOfRange", err)
	}
	if err := a.Fill(-1, 5); err != ErrOutOfRange {
		t.Errorf("Fill(-1,5) err = %v, want ErrOutOfRange", err)
	}
	if err := a.ClearRange(10, MaxElement+1); err != ErrOutOfRange {
		t.Errorf("ClearRange with out-of-range upper bound err = %v, want ErrOutOfRange", err)
	}
}

// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import "testing"

func TestAddRemoveContainsBasic(t *testing.T) {
	s := New()
	for _, e := range []int{5, 1, 9, 3} {
		added, err := s.Add(e)
		if err != nil || !added {
			t.Fatalf("Add(%d) = %v, %v; want true, nil", e, added, err)
		}
	}
	checkElements(t, "after adds", s, []int{1, 3, 5, 9})

	added, err := s.Add(5)
	if err != nil || added {
		t.Errorf("Add(5) (duplicate) = %v, %v; want false, nil", added, err)
	}

	removed, err := s.Remove(3)
	if err != nil || !removed {
		t.Errorf("Remove(3) = %v, %v; want true, nil", removed, err)
	}
	checkElements(t, "after remove", s, []int{1, 5, 9})

	removed, err = s.Remove(3)
	if err != nil || removed {
		t.Errorf("Remove(3) (already gone) = %v, %v; want false, nil", removed, err)
	}

	if !s.Contains(5) || s.Contains(3) {
		t.Errorf("Contains mismatch after mutation")
	}
	if s.Contains(-1) || s.Contains(MaxElement+1) {
		t.Errorf("Contains should report false (not error) for out-of-range elements")
	}
}

func TestFlip(t *testing.T) {
	s := New()
	present, err := s.Flip(10)
	if err != nil || !present {
		t.Fatalf("Flip(10) = %v, %v; want true, nil", present, err)
	}
	if !s.Contains(10) {
		t.Errorf("expected 10 present after Flip")
	}
	present, err = s.Flip(10)
	if err != nil || present {
		t.Fatalf("Flip(10) again = %v, %v; want false, nil", present, err)
	}
	if s.Contains(10) {
		t.Errorf("expected 10 absent after second Flip")
	}
}

func TestMutateAgainstReferenceModel(t *testing.T) {
	r := newRand(7)
	s := New()
	model := referenceModel{}
	for i := 0; i < 2000; i++ {
		e := r.Intn(4000)
		switch r.Intn(3) {
		case 0:
			added, err := s.Add(e)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			if added == model[e] {
				t.Fatalf("Add(%d) added=%v but model already has it=%v", e, added, model[e])
			}
			model[e] = true
		case 1:
			removed, err := s.Remove(e)
			if err != nil {
				t.Fatalf("Remove: %v", err)
			}
			if removed != model[e] {
				t.Fatalf("Remove(%d) removed=%v but model has it=%v", e, removed, model[e])
			}
			delete(model, e)
		case 2:
			if got := s.Contains(e); got != model[e] {
				t.Fatalf("Contains(%d) = %v, want %v", e, got, model[e])
			}
		}
	}
	checkElements(t, "mutate-vs-reference", s, model.sorted())
}

func TestOutOfRangeMutations(t *testing.T) {
	s := New()
	if _, err := s.Remove(-1); err != ErrOutOfRange {
		t.Errorf("Remove(-1) err = %v, want ErrOutOfRange", err)
	}
	if _, err := s.Flip(MaxElement + 5); err != ErrOutOfRange {
		t.Errorf("Flip(out of range) err = %v, want ErrOutOfRange", err)
	}
}

// Copyright 2026, The CONCISE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import (
	"crypto/aes"
	"crypto/cipher"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// rand is a deterministic pseudo-random source, built from an AES keystream,
// so that property tests are reproducible across Go versions and platforms.
type rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func newRand(seed int) *rand {
	var key [aes.BlockSize]byte
	key[0] = byte(seed)
	key[1] = byte(seed >> 8)
	key[2] = byte(seed >> 16)
	key[3] = byte(seed >> 24)
	r, _ := aes.NewCipher(key[:])
	return &rand{Block: r}
}

func (r *rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]&0x3f) << 48
	return x
}

func (r *rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	x := r.Int()
	if x < 0 {
		x = -x
	}
	return x % n
}

// randomElements returns n distinct elements drawn from [0, universe); when
// n exceeds universe, it returns every element of [0, universe).
func randomElements(r *rand, n, universe int) []int {
	if n > universe {
		n = universe
	}
	seen := make(map[int]bool, n)
	out := make([]int, 0, n)
	for len(out) < n {
		e := r.Intn(universe)
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}

// referenceModel is the plain, uncompressed ordered-set model that
// property tests check the compressed representation against.
type referenceModel map[int]bool

func newReferenceModel(elems []int) referenceModel {
	m := make(referenceModel, len(elems))
	for _, e := range elems {
		m[e] = true
	}
	return m
}

func (m referenceModel) sorted() []int {
	out := make([]int, 0, len(m))
	for e := range m {
		out = append(out, e)
	}
	sort.Ints(out)
	return out
}

func (m referenceModel) and(o referenceModel) referenceModel {
	out := referenceModel{}
	for e := range m {
		if o[e] {
			out[e] = true
		}
	}
	return out
}

func (m referenceModel) or(o referenceModel) referenceModel {
	out := referenceModel{}
	for e := range m {
		out[e] = true
	}
	for e := range o {
		out[e] = true
	}
	return out
}

func (m referenceModel) andNot(o referenceModel) referenceModel {
	out := referenceModel{}
	for e := range m {
		if !o[e] {
			out[e] = true
		}
	}
	return out
}

func (m referenceModel) xor(o referenceModel) referenceModel {
	out := referenceModel{}
	for e := range m {
		if !o[e] {
			out[e] = true
		}
	}
	for e := range o {
		if !m[e] {
			out[e] = true
		}
	}
	return out
}

// elements materialises every element of s in ascending order by draining
// a fresh Iterator; used throughout the test suite to compare against a
// referenceModel.
func elements(t *testing.T, s *Set) []int {
	t.Helper()
	out := make([]int, 0, s.Size())
	it := s.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			t.Fatalf("Iterator.Next: %v", err)
		}
		out = append(out, e)
	}
	return out
}

func setFrom(t *testing.T, elems []int, opts ...Option) *Set {
	t.Helper()
	s, err := NewFromElements(elems, opts...)
	if err != nil {
		t.Fatalf("NewFromElements: %v", err)
	}
	return s
}

func checkElements(t *testing.T, name string, s *Set, want []int) {
	t.Helper()
	got := elements(t, s)
	if want == nil {
		// A nil want stands for the empty set, which elements returns as
		// an empty, non-nil slice.
		want = []int{}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s: elements mismatch (-want +got):\n%s", name, diff)
	}
}

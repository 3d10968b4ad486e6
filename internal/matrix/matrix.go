/*
Package matrix implements a simple sparse integer matrix, used for the
prec2 relation table (package prec2).

Grammars for real languages relate only a small fraction of all possible
token pairs; a dense token×token matrix would waste memory for anything
but toy grammars. This implementation uses the COO algorithm (a.k.a.
triplet encoding), the same technique the underlying parser toolbox uses
for its GOTO/ACTION tables.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 The OPG Authors

*/
package matrix

import "fmt"

// IntMatrix is a sparse matrix of int32 values, addressed by (row, col).
// Construct with
//
//	m := NewIntMatrix(0)   // 0 is m's null-value
//
// Now
//
//	m.Set(2, 3, 4711)      // set a value
//	v, ok := m.Value(2, 3) // returns (4711, true)
//	v, ok = m.Value(9, 9)  // returns (0, false): no entry
//
// Values are never deleted, but may be overwritten.
type IntMatrix struct {
	values  []triplet
	nullval int32
}

type triplet struct {
	row, col int
	value    int32
}

// NewIntMatrix creates an empty sparse matrix. nullValue is the value
// reported by Value for a position that was never Set.
func NewIntMatrix(nullValue int32) *IntMatrix {
	return &IntMatrix{values: []triplet{}, nullval: nullValue}
}

// NullValue returns this matrix' configured null value.
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of populated positions.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the value stored at (row, col) and whether it was ever Set.
func (m *IntMatrix) Value(row, col int) (int32, bool) {
	if i, found := m.find(row, col); found {
		return m.values[i].value, true
	}
	return m.nullval, false
}

// Set stores a value at (row, col), overwriting whatever was there before.
// It returns the previous value and whether one was present, so callers
// can detect conflicting writes.
func (m *IntMatrix) Set(row, col int, value int32) (old int32, hadOld bool) {
	i, found := m.find(row, col)
	if found {
		old = m.values[i].value
		m.values[i].value = value
		return old, true
	}
	tnew := triplet{row: row, col: col, value: value}
	m.values = append(m.values, tnew)
	copy(m.values[i+1:], m.values[i:])
	m.values[i] = tnew
	return m.nullval, false
}

// Each iterates over every populated position in row-major order.
func (m *IntMatrix) Each(f func(row, col int, value int32)) {
	for _, t := range m.values {
		f(t.row, t.col, t.value)
	}
}

// find returns the index of (row, col) in m.values if present, or the
// insertion point (with found == false) that keeps m.values sorted in
// row-major order.
func (m *IntMatrix) find(row, col int) (int, bool) {
	at := 0
	for _, t := range m.values {
		if t.storedLeftOf(row, col) {
			at++
			continue
		}
		if t.storedAt(row, col) {
			return at, true
		}
		break
	}
	return at, false
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}

func (t triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%d", t.row, t.col, t.value)
}

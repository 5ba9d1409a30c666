package pow

import "testing"

func TestMatrixGenerateDeterministic(t *testing.T) {
	seed := NewUint256([4]uint64{1, 2, 3, 4})

	m1, err := generateMatrix(seed)
	if err != nil {
		t.Fatalf("generateMatrix: %v", err)
	}
	m2, err := generateMatrix(seed)
	if err != nil {
		t.Fatalf("generateMatrix: %v", err)
	}

	if m1.rows != m2.rows {
		t.Fatalf("Matrix::generate called twice must yield byte-identical matrices")
	}
}

func TestMatrixRankIsSixtyFour(t *testing.T) {
	seed := NewUint256([4]uint64{0xCAFEBABE, 0x1, 0x2, 0x3})
	m, err := generateMatrix(seed)
	if err != nil {
		t.Fatalf("generateMatrix: %v", err)
	}

	if rank := m.computeRank(); rank != 64 {
		t.Fatalf("generated matrix must have rank 64, got %d", rank)
	}
}

func TestMatrixNibbleBounds(t *testing.T) {
	seed := NewUint256([4]uint64{7, 8, 9, 10})
	m, err := generateMatrix(seed)
	if err != nil {
		t.Fatalf("generateMatrix: %v", err)
	}

	for i := range m.rows {
		for _, cell := range m.rows[i] {
			if cell > 0xF {
				t.Fatalf("cell (%d) out of nibble range: %d", i, cell)
			}
		}
	}
}

func TestMatrixHeavyHashDeterministic(t *testing.T) {
	seed := NewUint256([4]uint64{11, 12, 13, 14})
	m, err := generateMatrix(seed)
	if err != nil {
		t.Fatalf("generateMatrix: %v", err)
	}

	in := NewUint256([4]uint64{1, 1, 1, 1})
	a := m.heavyHash(in)
	b := m.heavyHash(in)
	if !a.Equal(b) {
		t.Fatalf("heavyHash must be deterministic for a fixed matrix and input")
	}
}

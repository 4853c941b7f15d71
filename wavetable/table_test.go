package wavetable_test

import (
	"math"
	"testing"

	"github.com/ottosson/wavetone/wavetable"
)

func TestSineTableValues(t *testing.T) {
	for _, n := range []int{1, 2, 64, 501, 4096} {
		table, err := wavetable.Sine(n)
		if err != nil {
			t.Fatalf("building sine table of length %d: %v", n, err)
		}
		if len(table) != n {
			t.Fatalf("sine table has length %d, want %d", len(table), n)
		}
		for i := range table {
			want := math.Sin(2 * math.Pi * float64(i) / float64(n))
			if table[i] != want {
				t.Errorf("n=%d: table[%d] = %v, want %v", n, i, table[i], want)
			}
			if table[i] < -1 || table[i] > 1 {
				t.Errorf("n=%d: table[%d] = %v out of [-1, 1]", n, i, table[i])
			}
		}
	}
}

func TestTableRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, -1, -64} {
		if _, err := wavetable.Sine(n); err == nil {
			t.Errorf("expected error for table length %d", n)
		}
	}
}

func TestTablePeriodicity(t *testing.T) {
	const n = 64
	table, err := wavetable.Sine(n)
	if err != nil {
		t.Fatal(err)
	}
	// reading at position p and p+n must agree under cyclic indexing
	for i := 0; i < 3*n; i++ {
		got := table.At(float64(i % n))
		want := table[i%n]
		if got != want {
			t.Errorf("At(%d mod %d) = %v, want %v", i, n, got, want)
		}
	}
}

func TestTableInterpolation(t *testing.T) {
	table := wavetable.Table{0, 1, -0.5, 0.25}

	// integer positions hit the entries exactly
	for i, want := range table {
		if got := table.At(float64(i)); got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}

	// midpoints are arithmetic means of the neighbors
	for i := range table {
		j := (i + 1) % len(table)
		want := (table[i] + table[j]) / 2
		if got := table.At(float64(i) + 0.5); math.Abs(got-want) > 1e-15 {
			t.Errorf("At(%v) = %v, want %v", float64(i)+0.5, got, want)
		}
	}
}

func TestTableWraparound(t *testing.T) {
	table := wavetable.Table{-0.75, 0, 0, 0.5}
	// positions past the last entry interpolate towards entry 0
	pos := 3.25
	want := 0.75*table[3] + 0.25*table[0]
	if got := table.At(pos); math.Abs(got-want) > 1e-15 {
		t.Errorf("At(%v) = %v, want %v", pos, got, want)
	}
}

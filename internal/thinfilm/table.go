package thinfilm

import (
	"fmt"
	"os"
	"sort"

	"github.com/kniren/gota/dataframe"
)

// Table is a tabulated complex refractive index, linearly interpolated
// between samples. Queries outside the tabulated range fail instead of
// extrapolating.
type Table struct {
	lambdas []Real
	ns      []complex128
}

// NewTable builds a tabulated model from ascending wavelengths and their
// complex indices.
func NewTable(lambdas []Real, ns []complex128) (*Table, error) {
	if len(lambdas) != len(ns) {
		return nil, fmt.Errorf("table: %d wavelengths vs %d indices", len(lambdas), len(ns))
	}
	if len(lambdas) < 2 {
		return nil, fmt.Errorf("table: need at least two samples, got %d", len(lambdas))
	}
	if !sort.Float64sAreSorted(lambdas) {
		return nil, fmt.Errorf("table: wavelengths must be ascending")
	}
	t := &Table{
		lambdas: append([]Real(nil), lambdas...),
		ns:      append([]complex128(nil), ns...),
	}
	return t, nil
}

func (t *Table) IndexAt(lambda Real) (complex128, error) {
	lo, hi := t.lambdas[0], t.lambdas[len(t.lambdas)-1]
	if lambda < lo || lambda > hi {
		return 0, fmt.Errorf("table: wavelength %g outside tabulated range [%g, %g]", lambda, lo, hi)
	}
	i := sort.SearchFloat64s(t.lambdas, lambda)
	if i < len(t.lambdas) && t.lambdas[i] == lambda {
		return t.ns[i], nil
	}
	f := (lambda - t.lambdas[i-1]) / (t.lambdas[i] - t.lambdas[i-1])
	return t.ns[i-1] + complex(f, 0)*(t.ns[i]-t.ns[i-1]), nil
}

// LoadTableCSV reads a CSV file with header columns lambda,n,k (k optional)
// into a Table. Wavelengths must be ascending and in the stack's length
// unit.
func LoadTableCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.WithDelimiter(','),
		dataframe.HasHeader(true))
	if df.Err != nil {
		return nil, fmt.Errorf("table: read %s: %w", path, df.Err)
	}

	names := df.Names()
	has := func(col string) bool {
		for _, n := range names {
			if n == col {
				return true
			}
		}
		return false
	}
	if !has("lambda") || !has("n") {
		return nil, fmt.Errorf("table: %s: want columns lambda,n[,k], got %v", path, names)
	}

	lambdas := df.Col("lambda").Float()
	nRe := df.Col("n").Float()
	var nIm []float64
	if has("k") {
		nIm = df.Col("k").Float()
	} else {
		nIm = make([]float64, len(nRe))
	}

	ns := make([]complex128, len(nRe))
	for i := range ns {
		ns[i] = complex(nRe[i], nIm[i])
	}
	t, err := NewTable(lambdas, ns)
	if err != nil {
		return nil, fmt.Errorf("%w (from %s)", err, path)
	}
	DebugLog("Loaded %d dispersion samples from %s", len(lambdas), path)
	return t, nil
}

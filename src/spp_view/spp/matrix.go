package spp

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// BinaryMatrix is a fixed-size 0/1 matrix stored row-major in a flat slice.
type BinaryMatrix struct {
	rows, cols int
	stride     int
	data       []uint8
}

func NewBinaryMatrix(rows, cols int) *BinaryMatrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("spp: negative matrix dimension %dx%d", rows, cols))
	}
	return &BinaryMatrix{
		rows:   rows,
		cols:   cols,
		stride: cols,
		data:   make([]uint8, rows*cols),
	}
}

func (m *BinaryMatrix) Rows() int { return m.rows }
func (m *BinaryMatrix) Cols() int { return m.cols }

func (m *BinaryMatrix) index(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("spp: index (%d, %d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
	return i*m.stride + j
}

func (m *BinaryMatrix) At(i, j int) uint8 {
	return m.data[m.index(i, j)]
}

// Set marks entry (i, j) with a 1. Entries are never cleared.
func (m *BinaryMatrix) Set(i, j int) {
	m.data[m.index(i, j)] = 1
}

// Row returns a copy of row i.
func (m *BinaryMatrix) Row(i int) []uint8 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("spp: row %d out of range for %dx%d matrix", i, m.rows, m.cols))
	}
	row := make([]uint8, m.cols)
	copy(row, m.data[i*m.stride:i*m.stride+m.cols])
	return row
}

func (m *BinaryMatrix) Clone() *BinaryMatrix {
	c := NewBinaryMatrix(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

func (m *BinaryMatrix) Equal(o *BinaryMatrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Dense converts the matrix into a gonum dense matrix. A matrix with a zero
// dimension yields nil since gonum does not allow empty matrices.
func (m *BinaryMatrix) Dense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := range m.rows {
		for j := range m.cols {
			if m.data[i*m.stride+j] == 1 {
				d.Set(i, j, 1)
			}
		}
	}
	return d
}

func (m *BinaryMatrix) String() string {
	s := new(strings.Builder)
	for i := range m.rows {
		for j := range m.cols {
			if j > 0 {
				s.WriteRune(' ')
			}
			fmt.Fprint(s, m.data[i*m.stride+j])
		}
		s.WriteRune('\n')
	}
	return s.String()
}

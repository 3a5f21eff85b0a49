package value

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Table is one weight table: TableSize float32 entries, zero-initialized.
type Table []float32

// Weights holds the four independent weight tables, one per Tuples entry.
type Weights struct {
	Tables [4]Table
}

// NewWeights allocates four zero-initialized tables (§3 "WeightTable.
// Mutable array of 16^6 floats, zero-initialized").
func NewWeights() *Weights {
	w := &Weights{}
	for i := range w.Tables {
		w.Tables[i] = make(Table, TableSize)
	}
	return w
}

// LoadWeights reads a weight file from path (§6: "Weight file format").
// A missing or unreadable file is fatal per §7 — callers at a process
// boundary should exit non-zero on error; this function just reports it.
func LoadWeights(path string) (*Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening weights file %q: %w", path, err)
	}
	defer f.Close()
	return LoadWeightsFromReader(f)
}

// LoadWeightsFromReader reads the §6 framing: a 4-byte table count followed
// by that many length-prefixed float32 tables.
func LoadWeightsFromReader(r io.Reader) (*Weights, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("reading table count: %w", err)
	}

	w := &Weights{}
	tables := make([]Table, 0, count)
	for i := uint32(0); i < count; i++ {
		t, err := loadTable(r)
		if err != nil {
			return nil, fmt.Errorf("reading table %d: %w", i, err)
		}
		tables = append(tables, t)
	}
	copy(w.Tables[:], tables)
	return w, nil
}

func loadTable(r io.Reader) (Table, error) {
	var length uint32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return nil, fmt.Errorf("reading table length: %w", err)
	}
	t := make(Table, length)
	if err := binary.Read(r, binary.LittleEndian, &t); err != nil {
		return nil, fmt.Errorf("reading table entries: %w", err)
	}
	return t, nil
}

// SaveWeights writes w to path using the §6 framing.
func SaveWeights(w *Weights, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating weights file %q: %w", path, err)
	}
	defer f.Close()
	return SaveWeightsToWriter(w, f)
}

// SaveWeightsToWriter writes the §6 framing to w2.
func SaveWeightsToWriter(w *Weights, w2 io.Writer) error {
	count := uint32(len(w.Tables))
	if err := binary.Write(w2, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("writing table count: %w", err)
	}
	for i, t := range w.Tables {
		if err := saveTable(w2, t); err != nil {
			return fmt.Errorf("writing table %d: %w", i, err)
		}
	}
	return nil
}

func saveTable(w io.Writer, t Table) error {
	length := uint32(len(t))
	if err := binary.Write(w, binary.LittleEndian, length); err != nil {
		return fmt.Errorf("writing table length: %w", err)
	}
	return binary.Write(w, binary.LittleEndian, t)
}

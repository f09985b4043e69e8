package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// table holds the columns extracted from one or more csv files. Series are
// appended in the order of the files, then of the requested columns.
type table struct {
	Labels []string
	Series [][]float64
}

func (t *table) merge(other table) {
	if len(t.Labels) == 0 {
		t.Labels = other.Labels
	}
	t.Series = append(t.Series, other.Series...)
}

func readFiles(files []string, xcol int, cols []int) (table, error) {
	var all table
	for _, f := range files {
		t, err := readFile(f, xcol, cols)
		if err != nil {
			return all, fmt.Errorf("%s: %w", f, err)
		}
		all.merge(t)
	}
	return all, nil
}

func readFile(file string, xcol int, cols []int) (table, error) {
	r, err := os.Open(file)
	if err != nil {
		return table{}, err
	}
	defer r.Close()
	return readTable(r, xcol, cols)
}

// readTable skips the header row then reads the label column xcol (ignored
// when negative) and every value column of cols.
func readTable(r io.Reader, xcol int, cols []int) (table, error) {
	if len(cols) == 0 {
		return table{}, fmt.Errorf("no value column given")
	}
	var (
		rs  = csv.NewReader(r)
		tab = table{
			Series: make([][]float64, len(cols)),
		}
	)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	if _, err := rs.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return tab, nil
		}
		return tab, err
	}
	for line := 2; ; line++ {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tab, err
		}
		if xcol >= len(row) {
			return tab, fmt.Errorf("line %d: invalid label column %d", line, xcol)
		}
		if xcol >= 0 {
			tab.Labels = append(tab.Labels, strings.TrimSpace(row[xcol]))
		}
		for i, c := range cols {
			if c < 0 || c >= len(row) {
				return tab, fmt.Errorf("line %d: invalid value column %d", line, c)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[c]), 64)
			if err != nil {
				return tab, fmt.Errorf("line %d: %w", line, err)
			}
			tab.Series[i] = append(tab.Series[i], v)
		}
	}
	return tab, nil
}

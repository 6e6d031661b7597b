// Package ioload reads delimited decision files into tables.
package ioload

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/data4safety/d4s/pkg/table"
	"github.com/gnames/gnlib"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Load reads a delimited file with a header line. An empty file gives an
// empty table. Cells are repaired to valid UTF-8 and normalized.
func Load(path string, delimiter rune) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, DataLoadError(path, err)
	}
	defer f.Close()

	res, err := Read(f, delimiter)
	if err != nil {
		return nil, DataLoadError(path, err)
	}
	rows, cols := res.Shape()
	slog.Info("Loaded input file", "path", path, "rows", rows, "columns", cols)
	return res, nil
}

// Read parses delimited text from r. Errors are returned as they come from
// the CSV reader, Load wraps them.
func Read(r io.Reader, delimiter rune) (*table.Table, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, bom) {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	cr.Comma = delimiter
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return table.New(nil, nil), nil
	}
	if err != nil {
		return nil, err
	}
	columns := make([]string, len(header))
	for i, v := range header {
		columns[i] = table.Normalize(gnlib.FixUtf8(v))
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]string, len(rec))
		for i, v := range rec {
			row[i] = table.Normalize(gnlib.FixUtf8(v))
		}
		rows = append(rows, row)
	}
	return table.New(columns, rows), nil
}

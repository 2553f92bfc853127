// SPDX-License-Identifier: MIT

// Package render writes matrices for people and pipes.
//
// Plain prints one row per line with elements separated by a single space,
// which is exactly what the console session contracts to emit. Grid draws a
// bordered table with right-aligned cells for terminals.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/intmat/matrix"
)

// Format selects a renderer.
type Format int

const (
	Plain Format = iota
	Grid
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("render: unknown format")

// ParseFormat maps "plain" / "grid" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "plain", "":
		return Plain, nil
	case "grid":
		return Grid, nil
	default:
		return Plain, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// String returns the config spelling of f.
func (f Format) String() string {
	if f == Grid {
		return "grid"
	}

	return "plain"
}

// Write renders m to w in the given format.
func Write(w io.Writer, m matrix.Matrix, f Format) error {
	cells, err := cellStrings(m)
	if err != nil {
		return err
	}
	if f == Grid {
		return writeGrid(w, cells)
	}

	return writePlain(w, cells)
}

// cellStrings formats every element in row-major order.
func cellStrings(m matrix.Matrix) ([][]string, error) {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = strconv.FormatInt(v, 10)
		}
	}

	return out, nil
}

func writePlain(w io.Writer, cells [][]string) error {
	var sb strings.Builder
	for _, row := range cells {
		sb.WriteString(strings.Join(row, " "))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

var cellStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)

func writeGrid(w io.Writer, cells [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Rows(cells...)
	_, err := io.WriteString(w, t.String()+"\n")

	return err
}

package city

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Header carries the TSPLIB specification part that precedes the data sections.
type Header struct {
	Name           string
	Comment        string
	Type           string
	Dimension      int
	EdgeWeightType string
}

// Parser states while walking the data part of a document.
const (
	sectionNone = iota
	sectionNodes
	sectionSkip
)

// coordinateWeightTypes lists EDGE_WEIGHT_TYPE values whose instances are
// fully described by node coordinates. Distances are always recomputed as
// plain Euclidean here; rounding rules of the individual types are ignored.
// The declared type is kept in Header.EdgeWeightType so reports can say so.
var coordinateWeightTypes = map[string]struct{}{
	"EUC_2D":  {},
	"CEIL_2D": {},
	"ATT":     {},
}

// LoadTSPLIB opens path and parses it with ParseTSPLIB.
func LoadTSPLIB(path string) (*Registry, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, err
	}
	defer f.Close()

	return ParseTSPLIB(f)
}

// ParseTSPLIB reads a TSPLIB document with a NODE_COORD_SECTION (or
// DISPLAY_DATA_SECTION) and returns the cities in file order.
//
// Accepted layout:
//
//	NAME : xqf131
//	DIMENSION : 131
//	EDGE_WEIGHT_TYPE : EUC_2D
//	NODE_COORD_SECTION
//	1 0 13
//	...
//	EOF
//
// The node id column is read but not used for ordering. A missing EOF line is
// tolerated. When DIMENSION is present it must match the number of nodes.
//
// Errors: ErrTSPLIBFormat (wrapped with the line number),
// ErrTSPLIBDimension, ErrUnsupportedWeightType, or the reader's error.
//
// Complexity: O(n) time and space.
func ParseTSPLIB(r io.Reader) (*Registry, Header, error) {
	var (
		hdr     Header
		reg     = NewRegistry()
		scanner = bufio.NewScanner(r)
		section int
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}

		if section != sectionNone {
			if !isKeyword(line) {
				if section == sectionSkip {
					continue
				}
				c, err := parseNodeLine(line)
				if err != nil {
					return nil, Header{}, fmt.Errorf("line %d: %w", lineNo, err)
				}
				_ = reg.Add(c)
				continue
			}
			section = sectionNone
		}

		if strings.HasSuffix(line, "_SECTION") {
			switch line {
			case "NODE_COORD_SECTION", "DISPLAY_DATA_SECTION":
				// Only the first coordinate section is read.
				section = sectionNodes
				if reg.Size() > 0 {
					section = sectionSkip
				}
			case "EDGE_WEIGHT_SECTION":
				return nil, Header{}, fmt.Errorf("line %d: %s: %w", lineNo, line, ErrUnsupportedWeightType)
			default:
				section = sectionSkip
			}
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, Header{}, fmt.Errorf("line %d: %q: %w", lineNo, line, ErrTSPLIBFormat)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "NAME":
			hdr.Name = value
		case "COMMENT":
			hdr.Comment = value
		case "TYPE":
			hdr.Type = value
		case "DIMENSION":
			d, err := strconv.Atoi(value)
			if err != nil || d < 0 {
				return nil, Header{}, fmt.Errorf("line %d: dimension %q: %w", lineNo, value, ErrTSPLIBFormat)
			}
			hdr.Dimension = d
		case "EDGE_WEIGHT_TYPE":
			if _, ok = coordinateWeightTypes[value]; !ok {
				return nil, Header{}, fmt.Errorf("%s: %w", value, ErrUnsupportedWeightType)
			}
			hdr.EdgeWeightType = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Header{}, err
	}

	if hdr.Dimension > 0 && hdr.Dimension != reg.Size() {
		return nil, Header{}, fmt.Errorf("declared %d, read %d: %w", hdr.Dimension, reg.Size(), ErrTSPLIBDimension)
	}

	return reg, hdr, nil
}

// parseNodeLine reads "id x y".
func parseNodeLine(line string) (*City, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, ErrTSPLIBFormat
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		return nil, ErrTSPLIBFormat
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, ErrTSPLIBFormat
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, ErrTSPLIBFormat
	}

	return New(x, y), nil
}

// isKeyword reports whether line starts a new specification entry or section.
func isKeyword(line string) bool {
	if strings.HasSuffix(line, "_SECTION") || strings.Contains(line, ":") {
		return true
	}
	first := line[0]

	return first >= 'A' && first <= 'Z'
}

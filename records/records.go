// Package records reads and writes the line-oriented interchange format
// consumed by visualization and metrics tooling: one detection per line,
//
//	class confidence cx cy w h angle
//
// whitespace separated, '#' starts a comment line.
package records

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ObbTileServer/geometry"
	iface "ObbTileServer/interface"
)

const fieldCount = 7

// Write serializes a global-frame DetectionSet. Floats are printed with
// strconv 'g' so a round-trip restores the exact float32 values.
func Write(w io.Writer, dets iface.DetectionSet) error {
	bw := bufio.NewWriter(w)
	for _, d := range dets {
		_, err := fmt.Fprintf(bw, "%s %s %s %s %s %s %s\n",
			d.Class,
			f32(d.Conf),
			f32(d.Box.Cx),
			f32(d.Box.Cy),
			f32(d.Box.W),
			f32(d.Box.H),
			f32(d.Box.Angle),
		)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses records back into a global-frame DetectionSet. Malformed
// lines are an error; the line number is reported.
func Read(r io.Reader) (iface.DetectionSet, error) {
	dets := iface.DetectionSet{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != fieldCount {
			return nil, fmt.Errorf("line %d: expected %d fields, got %d", lineNo, fieldCount, len(fields))
		}
		vals := make([]float32, fieldCount-1)
		for i, s := range fields[1:] {
			v, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: field %d: %v", lineNo, i+2, err)
			}
			vals[i] = float32(v)
		}
		box := geometry.NewOrientedBox(vals[1], vals[2], vals[3], vals[4], vals[5])
		if !box.Valid() {
			return nil, fmt.Errorf("line %d: %w: size %gx%g", lineNo, geometry.ErrInvalidGeometry, box.W, box.H)
		}
		dets = append(dets, iface.Detection{
			Box:   box,
			Class: fields[0],
			Conf:  vals[0],
			Frame: iface.FrameGlobal,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return dets, nil
}

func f32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

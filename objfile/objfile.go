// Package objfile implements the OBJ-like text container: a line-oriented
// format carrying a mesh's vertices and faces, optionally augmented with
// the compressed connectivity stream ("ebh"), its side table ("ebt"),
// and the duplicate-vertex list ("ebd").
package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/edgebreak/mesh/compress"
	"github.com/edgebreak/mesh/internal/logging"
	"github.com/edgebreak/mesh/sidetable"
)

// Sentinel errors for container parsing.
var (
	// ErrMalformedLine indicates a line could not be parsed under any
	// recognised record kind.
	ErrMalformedLine = errors.New("objfile: malformed line")

	// ErrFaceIndexOutOfRange indicates a face line referenced a vertex
	// index that is not a valid 1-based index.
	ErrFaceIndexOutOfRange = errors.New("objfile: face index out of range")
)

// Mesh is the plain indexed triangle mesh exchanged with the codec.
type Mesh struct {
	Vertices [][3]float64
	Faces    [][3]int
}

// Compressed is the full container contents: a mesh (already reordered
// into traversal order when produced by compression) plus the optional
// compressed-stream records.
type Compressed struct {
	Mesh Mesh

	HasHistory bool
	HistoryB64 string
	Pad        int

	Table      []sidetable.Entry
	Duplicates []compress.Duplicate
}

// Read parses the OBJ-like container from r. Lines it cannot classify
// are warned via log and skipped; log may be logging.Noop().
func Read(r io.Reader, log *logging.Logger) (*Compressed, error) {
	out := &Compressed{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++
		if line == "" {
			continue
		}

		switch {
		case line[0] == '#':
			continue
		case strings.HasPrefix(line, "v "):
			v, err := parseVertex(line)
			if err != nil {
				log.Warnw("failed to parse vertex line", "line", lineNo, "text", line)
				continue
			}
			out.Mesh.Vertices = append(out.Mesh.Vertices, v)
		case strings.HasPrefix(line, "f "):
			faces, err := parseFace(line)
			if err != nil {
				log.Warnw("failed to parse face line", "line", lineNo, "text", line)
				continue
			}
			out.Mesh.Faces = append(out.Mesh.Faces, faces...)
		case strings.HasPrefix(line, "ebh "):
			if err := parseHistoryLine(line, out); err != nil {
				log.Warnw("failed to parse history line", "line", lineNo, "text", line)
			}
		case strings.HasPrefix(line, "ebt "):
			parseTableLine(line, out, log, lineNo)
		case strings.HasPrefix(line, "ebd "):
			parseDupLine(line, out, log, lineNo)
		default:
			log.Warnw("failed to parse line", "line", lineNo, "text", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseVertex(line string) ([3]float64, error) {
	var v [3]float64
	fields := strings.Fields(line)[1:]
	if len(fields) < 3 {
		return v, ErrMalformedLine
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return v, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		v[i] = f
	}
	return v, nil
}

func parseIndex(tok string) (int, error) {
	first := strings.SplitN(tok, "/", 2)[0]
	return strconv.Atoi(first)
}

// parseFace fan-triangulates an n≥3 polygon as (v0, vi, vi+1).
func parseFace(line string) ([][3]int, error) {
	fields := strings.Fields(line)[1:]
	if len(fields) < 3 {
		return nil, ErrMalformedLine
	}
	vals := make([]int, len(fields))
	for i, f := range fields {
		idx, err := parseIndex(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		if idx < 1 {
			return nil, ErrFaceIndexOutOfRange
		}
		vals[i] = idx
	}

	n := len(vals)
	faces := make([][3]int, 0, n-2)
	for i := 1; i <= n-2; i++ {
		faces = append(faces, [3]int{vals[0], vals[i], vals[i+1]})
	}
	return faces, nil
}

func parseHistoryLine(line string, out *Compressed) error {
	fields := strings.Fields(line)[1:]
	if len(fields) != 2 {
		return ErrMalformedLine
	}
	pad, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	out.HasHistory = true
	out.HistoryB64 = fields[0]
	out.Pad = pad
	return nil
}

func parseTableLine(line string, out *Compressed, log *logging.Logger, lineNo int) {
	fields := strings.Fields(line)[1:]
	for _, entry := range fields {
		parts := strings.Split(entry, "/")
		ints := make([]int, len(parts))
		ok := true
		for i, p := range parts {
			v, err := strconv.Atoi(p)
			if err != nil {
				ok = false
				break
			}
			ints[i] = v
		}
		if !ok {
			log.Warnw("failed to parse side-table entry", "line", lineNo, "entry", entry)
			continue
		}
		switch len(ints) {
		case 2:
			out.Table = append(out.Table, sidetable.Entry{Kind: sidetable.KindHole, S: ints[0], Length: ints[1]})
		case 4:
			out.Table = append(out.Table, sidetable.Entry{
				Kind:     sidetable.KindMerge,
				S:        ints[0],
				Position: ints[1],
				Offset:   ints[2],
				Length:   ints[3],
			})
		default:
			log.Warnw("unexpected side-table entry arity", "line", lineNo, "entry", entry)
		}
	}
}

func parseDupLine(line string, out *Compressed, log *logging.Logger, lineNo int) {
	fields := strings.Fields(line)[1:]
	for _, entry := range fields {
		parts := strings.SplitN(entry, "/", 2)
		if len(parts) != 2 {
			log.Warnw("failed to parse duplicate entry", "line", lineNo, "entry", entry)
			continue
		}
		pos, err1 := strconv.Atoi(parts[0])
		idx, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			log.Warnw("failed to parse duplicate entry", "line", lineNo, "entry", entry)
			continue
		}
		out.Duplicates = append(out.Duplicates, compress.Duplicate{Pos: pos, Idx: idx})
	}
}

// Write serializes c to w in the OBJ-like container format.
func Write(w io.Writer, c *Compressed) error {
	bw := bufio.NewWriter(w)

	for _, v := range c.Mesh.Vertices {
		if _, err := fmt.Fprintf(bw, "v %v %v %v\n", v[0], v[1], v[2]); err != nil {
			return err
		}
	}
	for _, f := range c.Mesh.Faces {
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", f[0], f[1], f[2]); err != nil {
			return err
		}
	}

	if c.HasHistory {
		if _, err := fmt.Fprintf(bw, "ebh %s %d\n", c.HistoryB64, c.Pad); err != nil {
			return err
		}
	}

	if len(c.Table) > 0 {
		if _, err := bw.WriteString("ebt"); err != nil {
			return err
		}
		for _, e := range c.Table {
			var err error
			if e.Kind == sidetable.KindHole {
				_, err = fmt.Fprintf(bw, " %d/%d", e.S, e.Length)
			} else {
				_, err = fmt.Fprintf(bw, " %d/%d/%d/%d", e.S, e.Position, e.Offset, e.Length)
			}
			if err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	if len(c.Duplicates) > 0 {
		if _, err := bw.WriteString("ebd"); err != nil {
			return err
		}
		for _, d := range c.Duplicates {
			if _, err := fmt.Fprintf(bw, " %d/%d", d.Pos, d.Idx); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

package drawing

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/latticedraw/latticedraw/geom"
)

// LoadLineGraph parses the line-graph text format: line 1 is the vertex
// count n, line 2 is the edge count m, the next n lines are
// "ox oy cx cy" (original and current coordinates), and the final m lines
// are "i j" endpoint ids. This is the one persisted format latticedraw's
// own --dump/--output flags round-trip through.
//
// Vertex ids are assigned densely as the vertices are read, in file order,
// and edges are added through Drawing.AddEdge — so a duplicate edge line
// is silently dropped, per the shared edge-factory contract.
func LoadLineGraph(r io.Reader) (*Drawing, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n, err := readIntLine(sc)
	if err != nil {
		return nil, err
	}
	m, err := readIntLine(sc)
	if err != nil {
		return nil, err
	}

	d := New()
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, ErrMalformedLineGraph
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 4 {
			return nil, ErrMalformedLineGraph
		}
		ox, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, ErrMalformedLineGraph
		}
		oy, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, ErrMalformedLineGraph
		}
		cx, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, ErrMalformedLineGraph
		}
		cy, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, ErrMalformedLineGraph
		}
		v := d.AddVertex(geom.NewPoint(ox, oy))
		v.SetCurrent(geom.NewPoint(cx, cy))
	}

	for i := 0; i < m; i++ {
		if !sc.Scan() {
			return nil, ErrMalformedLineGraph
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			return nil, ErrMalformedLineGraph
		}
		a, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, ErrMalformedLineGraph
		}
		b, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, ErrMalformedLineGraph
		}
		if a < 0 || a >= len(d.Vertices) || b < 0 || b >= len(d.Vertices) {
			return nil, ErrMalformedLineGraph
		}
		d.AddEdge(d.Vertices[a], d.Vertices[b])
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func readIntLine(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, ErrMalformedLineGraph
	}
	v, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, ErrMalformedLineGraph
	}
	return v, nil
}

// WriteLineGraph serializes d in the line-graph text format.
func WriteLineGraph(w io.Writer, d *Drawing) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(d.Vertices)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw, len(d.Edges)); err != nil {
		return err
	}
	for _, v := range d.Vertices {
		if _, err := fmt.Fprintf(bw, "%v %v %v %v\n", v.Original.X, v.Original.Y, v.Current.X, v.Current.Y); err != nil {
			return err
		}
	}
	for _, e := range d.Edges {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.A.ID, e.B.ID); err != nil {
			return err
		}
	}
	return bw.Flush()
}

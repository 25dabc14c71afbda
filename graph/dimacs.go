package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadDimacs parses a DIMACS max-flow problem:
//
//	c comment
//	p max <nodes> <arcs>
//	n <id> s
//	n <id> t
//	a <from> <to> <capacity>
//
// The problem type may also be par-max, as written for parametric instances. Capacities may be
// real valued. The result is validated before it is returned.
func ReadDimacs(r io.Reader) (*Network, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	net := &Network{}
	haveProblem := false
	numArcs := 0
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
			continue
		case "p":
			if haveProblem {
				return nil, &ParseError{Line: line, Err: ErrDuplicateProblem}
			}
			if len(fields) != 4 {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("problem line has %d fields, want 4", len(fields))}
			}
			if fields[1] != "max" && fields[1] != "par-max" {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("unsupported problem type %q", fields[1])}
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			m, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			if m < 0 {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("negative arc count %d", m)}
			}
			net.NumNodes, numArcs = n, m
			net.Edges = make([]Edge, 0, m)
			haveProblem = true
		case "n":
			if !haveProblem {
				return nil, &ParseError{Line: line, Err: ErrMissingProblem}
			}
			if len(fields) != 3 {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("node line has %d fields, want 3", len(fields))}
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			switch fields[2] {
			case "s":
				net.Source = id
			case "t":
				net.Sink = id
			default:
				return nil, &ParseError{Line: line, Err: fmt.Errorf("unknown node designator %q", fields[2])}
			}
		case "a":
			if !haveProblem {
				return nil, &ParseError{Line: line, Err: ErrMissingProblem}
			}
			if len(fields) != 4 {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("arc line has %d fields, want 4", len(fields))}
			}
			from, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			to, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			capacity, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			net.Edges = append(net.Edges, Edge{From: from, To: to, Capacity: capacity})
		default:
			return nil, &ParseError{Line: line, Err: fmt.Errorf("unknown line type %q", fields[0])}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	switch {
	case !haveProblem:
		return nil, ErrMissingProblem
	case net.Source == 0:
		return nil, ErrMissingSource
	case net.Sink == 0:
		return nil, ErrMissingSink
	case len(net.Edges) != numArcs:
		return nil, fmt.Errorf("%w: declared %d, read %d", ErrArcCount, numArcs, len(net.Edges))
	}
	if err := net.Validate(); err != nil {
		return nil, err
	}
	return net, nil
}

func ReadDimacsFile(path string) (*Network, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	net, err := ReadDimacs(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return net, nil
}

// WriteDimacs writes net in the format ReadDimacs accepts.
func WriteDimacs(w io.Writer, net *Network) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p max %d %d\n", net.NumNodes, len(net.Edges))
	fmt.Fprintf(bw, "n %d s\n", net.Source)
	fmt.Fprintf(bw, "n %d t\n", net.Sink)
	for _, e := range net.Edges {
		fmt.Fprintf(bw, "a %d %d %s\n", e.From, e.To, strconv.FormatFloat(e.Capacity, 'g', -1, 64))
	}
	return bw.Flush()
}

// WriteFlow writes the flow value as an "s" line followed by one "f <from> <to> <flow>" line per
// edge, in edge order.
func WriteFlow(w io.Writer, net *Network, flows []float64, value float64) error {
	if len(flows) != len(net.Edges) {
		return fmt.Errorf("%w: %d flows for %d arcs", ErrFlowCount, len(flows), len(net.Edges))
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "s %s\n", strconv.FormatFloat(value, 'g', -1, 64))
	for i, e := range net.Edges {
		fmt.Fprintf(bw, "f %d %d %s\n", e.From, e.To, strconv.FormatFloat(flows[i], 'g', -1, 64))
	}
	return bw.Flush()
}

// ReadFlow parses the output of WriteFlow back into per-edge flows and the flow value.
func ReadFlow(r io.Reader, net *Network) (flows []float64, value float64, err error) {
	scanner := bufio.NewScanner(r)
	flows = make([]float64, 0, len(net.Edges))
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		switch {
		case fields[0] == "s" && len(fields) == 2:
			if value, err = strconv.ParseFloat(fields[1], 64); err != nil {
				return nil, 0, &ParseError{Line: line, Err: err}
			}
		case fields[0] == "f" && len(fields) == 4:
			f, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, 0, &ParseError{Line: line, Err: err}
			}
			flows = append(flows, f)
		default:
			return nil, 0, &ParseError{Line: line, Err: errors.New("expected an s or f line")}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	if len(flows) != len(net.Edges) {
		return nil, 0, fmt.Errorf("%w: %d flows for %d arcs", ErrFlowCount, len(flows), len(net.Edges))
	}
	return flows, value, nil
}

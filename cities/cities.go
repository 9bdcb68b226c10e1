package cities

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/satour/satour/geo"
)

var (
	// ErrBadFormat indicates malformed coordinate or route data.
	ErrBadFormat = errors.New("cities: malformed input")

	// ErrTooFewPoints indicates a coordinate file with fewer than two cities.
	ErrTooFewPoints = errors.New("cities: at least two cities are required")
)

// ParsePoints reads whitespace-delimited "x y" coordinate pairs, one city
// per line. Blank lines are skipped; anything else malformed fails with the
// line number, wrapping ErrBadFormat.
func ParsePoints(r io.Reader) ([]geo.Point, error) {
	var (
		pts     []geo.Point
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: expected two coordinates, got %d field(s)", ErrBadFormat, lineNo, len(fields))
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad x coordinate %q", ErrBadFormat, lineNo, fields[0])
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad y coordinate %q", ErrBadFormat, lineNo, fields[1])
		}

		pts = append(pts, geo.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cities: read coordinates: %w", err)
	}
	if len(pts) < 2 {
		return nil, ErrTooFewPoints
	}

	return pts, nil
}

// ReadPoints loads a coordinate file from disk via ParsePoints.
func ReadPoints(path string) ([]geo.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cities: open %s: %w", path, err)
	}
	defer f.Close()

	pts, err := ParsePoints(f)
	if err != nil {
		return nil, fmt.Errorf("cities: parse %s: %w", path, err)
	}

	return pts, nil
}

// ParseTour reads a visiting order: one city index per line, blank lines
// skipped. No permutation check is performed here; the optimizer validates
// the tour against the instance size.
func ParseTour(r io.Reader) ([]int, error) {
	var (
		tour    []int
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad city index %q", ErrBadFormat, lineNo, line)
		}
		tour = append(tour, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cities: read route: %w", err)
	}

	return tour, nil
}

// ReadTour loads a route file from disk via ParseTour.
func ReadTour(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cities: open %s: %w", path, err)
	}
	defer f.Close()

	tour, err := ParseTour(f)
	if err != nil {
		return nil, fmt.Errorf("cities: parse %s: %w", path, err)
	}

	return tour, nil
}

// WriteTour persists a visiting order, one city index per line.
func WriteTour(path string, tour []int) error {
	var b strings.Builder
	for _, v := range tour {
		fmt.Fprintf(&b, "%d\n", v)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("cities: write %s: %w", path, err)
	}

	return nil
}

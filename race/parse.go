package race

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrMissingLine    = errors.New("missing line")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrLengthMismatch = errors.New("times and records differ in length")
)

// LoadRaces reads races from the file at path.
func LoadRaces(path string) ([]Race, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	races, err := ParseRaces(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return races, nil
}

// ParseRaces reads a times line and a records line, each a label followed by
// whitespace-separated numbers, and pairs them up by position. Anything after
// the second line is ignored.
func ParseRaces(r io.Reader) ([]Race, error) {
	scanner := bufio.NewScanner(r)
	times, err := scanNumbers(scanner, "times")
	if err != nil {
		return nil, err
	}
	records, err := scanNumbers(scanner, "records")
	if err != nil {
		return nil, err
	}
	if len(times) != len(records) {
		return nil, fmt.Errorf("%w: %d times, %d records", ErrLengthMismatch, len(times), len(records))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Record: records[i]}
	}
	return races, nil
}

func scanNumbers(scanner *bufio.Scanner, what string) ([]int64, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
		return nil, fmt.Errorf("%s: %w", what, ErrMissingLine)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) == 0 {
		return nil, fmt.Errorf("%s: %w", what, ErrMissingLine)
	}
	// first field is the label
	ns := make([]int64, len(fields)-1)
	for i, f := range fields[1:] {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s: %w %d: '%s'", what, ErrInvalidNumber, i+1, f)
		}
		ns[i] = n
	}
	return ns, nil
}

package g25

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cosmossdk.io/errors"
	"github.com/rs/zerolog"

	"github.com/g25-tools/g25-averager/g25/types"
)

const (
	commentPrefix  = "#"
	fieldSeparator = ","
	byteOrderMark  = "\ufeff"

	maxLineSize = 1 << 20
)

type (
	// Parser reads named G25 coordinate lines. Malformed lines are logged
	// and skipped unless the parser is strict, in which case the first
	// malformed line aborts the parse.
	Parser struct {
		logger zerolog.Logger
		strict bool
	}

	// LineError records a malformed input line.
	LineError struct {
		Line    int
		Content string
		Err     error
	}

	// ParseResult holds the samples read from one input along with the
	// lines that were skipped.
	ParseResult struct {
		Samples []types.Sample
		Skipped []LineError
	}
)

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// NewParser returns a Parser logging skipped lines to logger.
func NewParser(logger zerolog.Logger, strict bool) *Parser {
	return &Parser{
		logger: logger.With().Str("module", "parser").Logger(),
		strict: strict,
	}
}

// ParseFile opens path and parses its contents.
func (p *Parser) ParseFile(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, types.ErrInputFile.Wrapf("%s: %s", path, err)
	}
	defer f.Close()

	res, err := p.Parse(f)
	if err != nil {
		return res, errors.Wrap(err, path)
	}
	return res, nil
}

// Parse reads every line of r. It returns ErrEmptyInput when no valid
// sample remains after blank, comment and malformed lines are dropped.
func (p *Parser) Parse(r io.Reader) (ParseResult, error) {
	var res ParseResult

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		if lineNum == 1 {
			raw = strings.TrimPrefix(raw, byteOrderMark)
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		sample, err := ParseLine(line)
		if err != nil {
			lineErr := LineError{Line: lineNum, Content: raw, Err: err}
			if p.strict {
				return res, lineErr
			}

			p.logger.Warn().
				Int("line", lineNum).
				Str("content", raw).
				Err(err).
				Msg("skipping malformed line")
			res.Skipped = append(res.Skipped, lineErr)
			continue
		}
		res.Samples = append(res.Samples, sample)
	}
	if err := scanner.Err(); err != nil {
		return res, types.ErrInputFile.Wrapf("line %d: %s", lineNum+1, err)
	}

	if len(res.Samples) == 0 {
		return res, types.ErrEmptyInput.Wrapf("%d lines read, %d malformed", lineNum, len(res.Skipped))
	}
	return res, nil
}

// ParseLine splits a single non-comment line into a sample name and its
// coordinates. Whitespace around fields is ignored.
func ParseLine(line string) (types.Sample, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) != types.Dims+1 {
		return types.Sample{}, types.ErrParse.Wrapf(
			"expected %d comma-separated fields, got %d", types.Dims+1, len(parts),
		)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return types.Sample{}, types.ErrParse.Wrap("empty sample name")
	}

	var vec types.Vector
	for i, field := range parts[1:] {
		field = strings.TrimSpace(field)
		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return types.Sample{}, types.ErrParse.Wrapf(
				"failed to parse coordinate %d (%q) for sample %q", i+1, field, name,
			)
		}
		vec[i] = x
	}
	if !vec.IsFinite() {
		return types.Sample{}, types.ErrParse.Wrapf("non-finite value in vector for %q", name)
	}

	return types.Sample{Name: name, Vector: vec}, nil
}

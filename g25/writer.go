package g25

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/g25-tools/g25-averager/g25/types"
)

// ShortestPrecision formats each coordinate with the fewest digits that
// parse back to the identical float64.
const ShortestPrecision = -1

// ValidateLabel rejects labels that would not survive being read back as
// the name field of a coordinate line.
func ValidateLabel(label string) error {
	switch {
	case strings.TrimSpace(label) == "":
		return types.ErrInvalidLabel.Wrap("output name cannot be empty")
	case strings.Contains(label, fieldSeparator):
		return types.ErrInvalidLabel.Wrapf("output name %q must not contain %q", label, fieldSeparator)
	case strings.ContainsAny(label, "\r\n"):
		return types.ErrInvalidLabel.Wrapf("output name %q must be a single line", label)
	case strings.HasPrefix(strings.TrimSpace(label), commentPrefix):
		return types.ErrInvalidLabel.Wrapf("output name %q must not start with %q", label, commentPrefix)
	}
	return nil
}

// FormatLine renders label and vec as a coordinate line. Coordinates use
// fixed-point notation with precision digits after the decimal point, or
// the shortest exact form when precision is ShortestPrecision.
func FormatLine(label string, vec types.Vector, precision int) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(label))
	for _, x := range vec {
		b.WriteString(fieldSeparator)
		b.WriteString(strconv.FormatFloat(x, 'f', precision, 64))
	}
	return b.String()
}

// WriteLine writes line to path. The file is created if needed; it is
// truncated when overwrite is set and appended to otherwise. When appending
// to a file whose last line is unterminated, a newline is inserted first.
func WriteLine(path, line string, overwrite bool) (err error) {
	flags := os.O_CREATE | os.O_RDWR
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return types.ErrOutputWrite.Wrapf("%s: %s", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = types.ErrOutputWrite.Wrapf("%s: %s", path, cerr)
		}
	}()

	prefix, err := missingNewline(f)
	if err != nil {
		return types.ErrOutputWrite.Wrapf("%s: %s", path, err)
	}

	if _, err := io.WriteString(f, prefix+line+"\n"); err != nil {
		return types.ErrOutputWrite.Wrapf("%s: %s", path, err)
	}
	return nil
}

func missingNewline(f *os.File) (string, error) {
	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.Size() == 0 {
		return "", nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return "", err
	}
	if last[0] == '\n' {
		return "", nil
	}
	return "\n", nil
}

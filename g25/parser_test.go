package g25_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cosmossdk.io/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/g25-tools/g25-averager/g25"
	"github.com/g25-tools/g25-averager/g25/types"
)

func TestParseLine(t *testing.T) {
	testCases := map[string]struct {
		line string
		name string
		err  bool
	}{
		"valid line": {
			line: line("German_Hamburg:GSM1031510", 0.125, types.Dims),
			name: "German_Hamburg:GSM1031510",
		},
		"whitespace around fields": {
			line: strings.ReplaceAll(line(" Ukrainian_Lviv ", -0.01, types.Dims), ",", " , "),
			name: "Ukrainian_Lviv",
		},
		"24 coordinates": {
			line: line("A", 1, types.Dims-1),
			err:  true,
		},
		"26 coordinates": {
			line: line("A", 1, types.Dims+1),
			err:  true,
		},
		"non-numeric coordinate": {
			line: strings.Replace(line("A", 1, types.Dims), ",1", ",abc", 1),
			err:  true,
		},
		"empty coordinate": {
			line: strings.Replace(line("A", 1, types.Dims), ",1", ",", 1),
			err:  true,
		},
		"non-finite coordinate": {
			line: strings.Replace(line("A", 1, types.Dims), ",1", ",NaN", 1),
			err:  true,
		},
		"infinite coordinate": {
			line: strings.Replace(line("A", 1, types.Dims), ",1", ",+Inf", 1),
			err:  true,
		},
		"empty name": {
			line: line("", 1, types.Dims),
			err:  true,
		},
	}

	for name, tc := range testCases {
		tc := tc

		t.Run(name, func(t *testing.T) {
			s, err := g25.ParseLine(tc.line)
			if tc.err {
				require.Error(t, err)
				require.True(t, errors.IsOf(err, types.ErrParse))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.name, s.Name)
		})
	}
}

func TestParseLineValues(t *testing.T) {
	fields := []string{"Sample"}
	for i := 0; i < types.Dims; i++ {
		fields = append(fields, []string{"0.1", "-0.02", "+3", "1e-3", "0"}[i%5])
	}

	s, err := g25.ParseLine(strings.Join(fields, ","))
	require.NoError(t, err)
	require.Equal(t, 0.1, s.Vector[0])
	require.Equal(t, -0.02, s.Vector[1])
	require.Equal(t, 3.0, s.Vector[2])
	require.Equal(t, 0.001, s.Vector[3])
	require.Equal(t, 0.0, s.Vector[4])
}

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"# exported coordinates",
		"",
		"   ",
		line("A:s1", 1, types.Dims),
		"  # indented comment",
		line("B:s2", 3, types.Dims-1),
		line("B:s3", 3, types.Dims),
		line("C", 2, types.Dims+1),
	}, "\n")

	t.Run("when malformed lines are skipped", func(t *testing.T) {
		var logs bytes.Buffer
		p := g25.NewParser(zerolog.New(&logs), false)

		res, err := p.Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, res.Samples, 2)
		require.Equal(t, "A:s1", res.Samples[0].Name)
		require.Equal(t, "B:s3", res.Samples[1].Name)

		require.Len(t, res.Skipped, 2)
		require.Equal(t, 6, res.Skipped[0].Line)
		require.Equal(t, 8, res.Skipped[1].Line)
		require.True(t, errors.IsOf(res.Skipped[0], types.ErrParse))

		require.Equal(t, 2, strings.Count(logs.String(), "skipping malformed line"))
		require.Contains(t, logs.String(), `"line":6`)
	})

	t.Run("when the parser is strict", func(t *testing.T) {
		p := g25.NewParser(zerolog.Nop(), true)

		_, err := p.Parse(strings.NewReader(input))
		require.Error(t, err)
		require.True(t, errors.IsOf(err, types.ErrParse))

		var lineErr g25.LineError
		require.ErrorAs(t, err, &lineErr)
		require.Equal(t, 6, lineErr.Line)
		require.Equal(t, line("B:s2", 3, types.Dims-1), lineErr.Content)
	})

	t.Run("when only comments and blank lines are present", func(t *testing.T) {
		p := g25.NewParser(zerolog.Nop(), false)

		res, err := p.Parse(strings.NewReader("# nothing\n\n  \n"))
		require.Error(t, err)
		require.True(t, errors.IsOf(err, types.ErrEmptyInput))
		require.Empty(t, res.Samples)
		require.Empty(t, res.Skipped)
	})

	t.Run("when every line is malformed", func(t *testing.T) {
		p := g25.NewParser(zerolog.Nop(), false)

		res, err := p.Parse(strings.NewReader("a,b,c\nd,e\n"))
		require.True(t, errors.IsOf(err, types.ErrEmptyInput))
		require.Len(t, res.Skipped, 2)
	})

	t.Run("when the input starts with a byte order mark", func(t *testing.T) {
		p := g25.NewParser(zerolog.Nop(), true)

		res, err := p.Parse(strings.NewReader("\ufeff" + line("A", 1, types.Dims) + "\r\n"))
		require.NoError(t, err)
		require.Equal(t, "A", res.Samples[0].Name)
	})
}

func TestParseFile(t *testing.T) {
	p := g25.NewParser(zerolog.Nop(), false)

	t.Run("when the file does not exist", func(t *testing.T) {
		_, err := p.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
		require.True(t, errors.IsOf(err, types.ErrInputFile))
	})

	t.Run("when the file is empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := p.ParseFile(path)
		require.True(t, errors.IsOf(err, types.ErrEmptyInput))
		require.Contains(t, err.Error(), path)
	})

	t.Run("when the file is valid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.txt")
		require.NoError(t, os.WriteFile(path, []byte(line("A", 1, types.Dims)+"\n"), 0o644))

		res, err := p.ParseFile(path)
		require.NoError(t, err)
		require.Len(t, res.Samples, 1)
	})
}

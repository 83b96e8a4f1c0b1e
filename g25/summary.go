package g25

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/g25-tools/g25-averager/g25/types"
)

type (
	// Summary describes one averaging run.
	Summary struct {
		Input   string         `yaml:"input"`
		Mode    types.Mode     `yaml:"mode"`
		Label   string         `yaml:"label"`
		Samples int            `yaml:"samples"`
		Skipped []SkippedLine  `yaml:"skipped,omitempty"`
		Groups  []GroupSummary `yaml:"groups,omitempty"`
		Result  []float64      `yaml:"result,flow"`
		Spread  []float64      `yaml:"spread,flow"`
	}

	// SkippedLine is a malformed input line that was left out of the run.
	SkippedLine struct {
		Line    int    `yaml:"line"`
		Content string `yaml:"content"`
		Reason  string `yaml:"reason"`
	}

	// GroupSummary is the member count and mean of one group.
	GroupSummary struct {
		Key   string    `yaml:"key"`
		Count int       `yaml:"count"`
		Mean  []float64 `yaml:"mean,flow"`
	}
)

// NewSummary collects the parse and aggregation outcome of a run.
func NewSummary(input, label string, parsed ParseResult, res Result) Summary {
	s := Summary{
		Input:   input,
		Mode:    res.Mode,
		Label:   label,
		Samples: res.Samples,
		Result:  res.Vector.Slice(),
		Spread:  res.Spread.Slice(),
	}
	for _, le := range parsed.Skipped {
		s.Skipped = append(s.Skipped, SkippedLine{
			Line:    le.Line,
			Content: le.Content,
			Reason:  le.Err.Error(),
		})
	}
	for _, g := range res.Groups {
		s.Groups = append(s.Groups, GroupSummary{
			Key:   g.Key,
			Count: g.Count,
			Mean:  g.Vector.Slice(),
		})
	}
	return s
}

// WriteFile writes s to path as YAML, replacing any existing file.
func (s Summary) WriteFile(path string) error {
	bz, err := yaml.Marshal(s)
	if err != nil {
		return types.ErrOutputWrite.Wrapf("failed to encode summary: %s", err)
	}
	if err := os.WriteFile(path, bz, 0o644); err != nil {
		return types.ErrOutputWrite.Wrapf("%s: %s", path, err)
	}
	return nil
}

// Package label supplies the name attached to a computed coordinate set.
package label

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/g25-tools/g25-averager/g25/types"
)

// DefaultPrompt is shown by Prompt when no message is configured.
const DefaultPrompt = "Enter output sample name: "

// Provider returns the label for a result.
type Provider interface {
	Label() (string, error)
}

var (
	_ Provider = Static("")
	_ Provider = Func(nil)
	_ Provider = (*Prompt)(nil)
)

// Static is a fixed label.
type Static string

func (s Static) Label() (string, error) {
	return strings.TrimSpace(string(s)), nil
}

// Func adapts a function to a Provider.
type Func func() (string, error)

func (f Func) Label() (string, error) {
	return f()
}

// Prompt asks for a label on Out and reads one line from In.
type Prompt struct {
	In      io.Reader
	Out     io.Writer
	Message string
}

// NewPrompt returns a Prompt showing DefaultPrompt.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{In: in, Out: out, Message: DefaultPrompt}
}

func (p *Prompt) Label() (string, error) {
	msg := p.Message
	if msg == "" {
		msg = DefaultPrompt
	}
	if _, err := fmt.Fprint(p.Out, msg); err != nil {
		return "", err
	}

	text, err := bufio.NewReader(p.In).ReadString('\n')
	switch {
	case err == io.EOF && text == "":
		return "", types.ErrInvalidLabel.Wrap("no output name entered")
	case err != nil && err != io.EOF:
		return "", types.ErrInvalidLabel.Wrapf("failed to read output name: %s", err)
	}
	return strings.TrimSpace(text), nil
}

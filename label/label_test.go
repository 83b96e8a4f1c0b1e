package label_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	sdkerrors "cosmossdk.io/errors"
	"github.com/stretchr/testify/require"

	"github.com/g25-tools/g25-averager/g25/types"
	"github.com/g25-tools/g25-averager/label"
)

func TestStatic(t *testing.T) {
	l, err := label.Static("  Mix  ").Label()
	require.NoError(t, err)
	require.Equal(t, "Mix", l)
}

func TestFunc(t *testing.T) {
	boom := errors.New("boom")
	_, err := label.Func(func() (string, error) { return "", boom }).Label()
	require.ErrorIs(t, err, boom)
}

func TestPrompt(t *testing.T) {
	t.Run("when a line is entered", func(t *testing.T) {
		var out bytes.Buffer
		l, err := label.NewPrompt(strings.NewReader("My_Avg\nignored\n"), &out).Label()
		require.NoError(t, err)
		require.Equal(t, "My_Avg", l)
		require.Equal(t, label.DefaultPrompt, out.String())
	})

	t.Run("when input ends without a newline", func(t *testing.T) {
		l, err := label.NewPrompt(strings.NewReader("  Last "), &bytes.Buffer{}).Label()
		require.NoError(t, err)
		require.Equal(t, "Last", l)
	})

	t.Run("when input is closed", func(t *testing.T) {
		_, err := label.NewPrompt(strings.NewReader(""), &bytes.Buffer{}).Label()
		require.True(t, sdkerrors.IsOf(err, types.ErrInvalidLabel))
	})

	t.Run("when a custom message is set", func(t *testing.T) {
		var out bytes.Buffer
		p := &label.Prompt{In: strings.NewReader("x\n"), Out: &out, Message: "name? "}
		_, err := p.Label()
		require.NoError(t, err)
		require.Equal(t, "name? ", out.String())
	})
}

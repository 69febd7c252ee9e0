package clipboard_test

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/fwojciec/pbirview/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	t.Run("prefers the first available command", func(t *testing.T) {
		t.Parallel()

		cb, err := clipboard.DetectWith(func(name string) (string, error) {
			if name == "xclip" || name == "wl-copy" {
				return "/usr/bin/" + name, nil
			}
			return "", exec.ErrNotFound
		})

		require.NoError(t, err)
		assert.Equal(t, "wl-copy", cb.Name)
	})

	t.Run("configures xclip for the clipboard selection", func(t *testing.T) {
		t.Parallel()

		cb, err := clipboard.DetectWith(func(name string) (string, error) {
			if name == "xclip" {
				return "/usr/bin/xclip", nil
			}
			return "", exec.ErrNotFound
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"-selection", "clipboard"}, cb.Args)
	})

	t.Run("fails when nothing is installed", func(t *testing.T) {
		t.Parallel()

		_, err := clipboard.DetectWith(func(string) (string, error) {
			return "", exec.ErrNotFound
		})

		assert.True(t, errors.Is(err, clipboard.ErrUnavailable))
	})
}

func TestCommand_Copy(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("pbcopy"); err != nil {
		t.Skip("pbcopy not available, skipping clipboard test")
	}

	content := "test clipboard content from pbirview"
	require.NoError(t, clipboard.NewPBCopy().Copy(content))

	if _, err := exec.LookPath("pbpaste"); err != nil {
		t.Skip("pbpaste not available, cannot verify clipboard content")
	}
	out, err := exec.Command("pbpaste").Output()
	require.NoError(t, err)
	assert.Equal(t, content, string(out))
}

func TestCommand_CopyMissingBinary(t *testing.T) {
	t.Parallel()

	cb := &clipboard.Command{Name: "pbirview-no-such-clipboard-binary"}

	assert.Error(t, cb.Copy("x"))
}

package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFlag(t *testing.T) {
	for _, flag := range []string{"-v", "--version"} {
		t.Run(flag, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCommand(log.New(io.Discard, "", 0))
			cmd.SetOut(&out)
			cmd.SetArgs([]string{flag})

			require.NoError(t, cmd.Execute())
			assert.True(t, strings.HasPrefix(out.String(), "tack 0.1\n"), out.String())
			assert.Contains(t, out.String(), "GNU GPL version 3")
		})
	}
}

func TestRejectsArgs(t *testing.T) {
	cmd := newRootCommand(log.New(io.Discard, "", 0))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"file.tack"})
	assert.Error(t, cmd.Execute())
}

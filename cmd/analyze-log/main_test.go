package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const logLine = "LOG:  connection received: host=10.1.1.1 port=5432\n"

func TestRun_ReadsFileArgument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pg.log")
	require.NoError(t, os.WriteFile(path, []byte(logLine), 0644))

	var out bytes.Buffer
	require.NoError(t, run([]string{path}, os.Stdin, &out))
	assert.Contains(t, out.String(), "Host 10.1.1.1")
}

func TestRun_ReadsPipedStdin(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(logLine)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	defer r.Close()

	var out bytes.Buffer
	require.NoError(t, run(nil, r, &out))
	assert.Contains(t, out.String(), "Connections received: 1")
}

func TestRun_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{filepath.Join(t.TempDir(), "absent.log")}, os.Stdin, &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

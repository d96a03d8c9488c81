package main

import (
	"encoding/base64"
	"encoding/hex"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

// readHexLines decodes every non-empty line of a file as hex.
func readHexLines(t *testing.T, path string) [][]byte {
	t.Helper()
	var lines [][]byte
	for _, line := range strings.Fields(string(readFile(t, path))) {
		data, err := hex.DecodeString(line)
		require.NoError(t, err, "decoding hex line %d of %s", len(lines), path)
		lines = append(lines, data)
	}
	return lines
}

func readBase64File(t *testing.T, path string) []byte {
	t.Helper()
	bdata := readFile(t, path)
	data := make([]byte, base64.StdEncoding.DecodedLen(len(bdata)))
	n, err := base64.StdEncoding.Decode(data, bdata)
	require.NoError(t, err, "decoding base64 %s", path)
	return data[:n]
}

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	tbl := Table{
		Header: []string{"METHOD", "PATH"},
		Rows:   [][]string{{"GET", "/"}, {"POST", "/login"}},
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatTable, tbl))
		assert.Equal(t, "METHOD  PATH\n------  ----\nGET     /\nPOST    /login\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatJSON, tbl))
		assert.JSONEq(t, `{"items":[{"method":"GET","path":"/"},{"method":"POST","path":"/login"}],"count":2}`, buf.String())
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, Write(&bytes.Buffer{}, "yaml", tbl))
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}

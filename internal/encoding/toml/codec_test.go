package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	type entry struct {
		Name string `toml:"name"`
	}
	data := struct {
		Path    string  `toml:"path"`
		Entries []entry `toml:"entries"`
	}{
		Path:    "/repo",
		Entries: []entry{{Name: "src"}},
	}

	b, err := Codec{}.Encode(data)
	require.NoError(t, err)
	require.Contains(t, string(b), "/repo")
	require.Contains(t, string(b), "[[entries]]")
	require.Contains(t, string(b), "src")
}


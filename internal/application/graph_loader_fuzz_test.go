package application

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// FuzzGraphLoader_Load verifies the loader never panics on arbitrary
// document bytes; malformed input must always come back as an error.
func FuzzGraphLoader_Load(f *testing.F) {
	f.Add([]byte(validGraphYAML))
	f.Add([]byte(""))
	f.Add([]byte("version: \"1.0.0\""))
	f.Add([]byte("nodes:\n  - id: a\n    type: number\n"))
	f.Add([]byte("{{{"))
	f.Add([]byte("version: !!binary garbage"))

	loader, err := NewGraphLoader()
	require.NoError(f, err)

	f.Fuzz(func(t *testing.T, data []byte) {
		graph, err := loader.LoadFromReader(bytes.NewReader(data))
		if err == nil && graph == nil {
			t.Error("nil graph without error")
		}
	})
}

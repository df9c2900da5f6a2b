package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	for _, name := range []string{Header, Footer, Config} {
		content, err := Get(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, content, name)
	}

	_, err := Get("missing.tmpl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template missing.tmpl not found")
}

func TestParse(t *testing.T) {
	for _, name := range []string{Header, Footer, Config} {
		tmpl, err := Parse(name, nil)
		require.NoError(t, err, name)
		assert.Equal(t, name, tmpl.Name())
	}
}

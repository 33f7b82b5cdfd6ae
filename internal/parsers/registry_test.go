package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-technology-foundation/deltags/internal/core/domain"
)

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	assert.Equal(t, []string{"html5", "strict", "tokenizer"}, r.Names())

	p, err := r.Get(DefaultParser)
	require.NoError(t, err)
	assert.Equal(t, "html5", p.Name())
}

func TestRegistry_GetNormalisesName(t *testing.T) {
	r := NewDefaultRegistry()

	p, err := r.Get(" HTML5 ")
	require.NoError(t, err)
	assert.Equal(t, "html5", p.Name())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewDefaultRegistry()

	_, err := r.Get("lxml")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownParser)
	assert.Contains(t, err.Error(), "html5, strict, tokenizer")
}

func TestRegistry_Traits(t *testing.T) {
	r := NewDefaultRegistry()
	for _, name := range r.Names() {
		p, err := r.Get(name)
		require.NoError(t, err)
		assert.NotEmpty(t, p.Traits())
	}
}

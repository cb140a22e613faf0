package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	en, err := Lookup("en")
	require.NoError(t, err)
	assert.Equal(t, "en", en.Locale)
	assert.NotEmpty(t, en.Hero.Title)

	hi, err := Lookup("hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", hi.Locale)
	assert.NotEmpty(t, hi.Selector.SearchPlaceholder)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("fr")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}

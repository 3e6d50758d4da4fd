package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByKey(t *testing.T) {
	icon, ok := ByKey("SiReact")
	require.True(t, ok)
	assert.Equal(t, "React", icon.Label)
	assert.Equal(t, "https://cdn.simpleicons.org/react/61DAFB", icon.URL(""))
	assert.Equal(t, "https://cdn.simpleicons.org/react/ffffff", icon.URL("#ffffff"))

	_, ok = ByKey("SiCobol")
	assert.False(t, ok)

	_, ok = ByKey("")
	assert.False(t, ok)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"React", "React.js", " react "} {
		icon, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, React, icon.Key)
	}

	icon, ok := ByName("Storyblok")
	require.True(t, ok)
	assert.Equal(t, Storybook, icon.Key)

	_, ok = ByName("Haskell")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	icon, ok := Resolve("FaReact", "React")
	require.True(t, ok, "unknown key falls back to the name")
	assert.Equal(t, React, icon.Key)

	icon, ok = Resolve("SiGo", "whatever")
	require.True(t, ok)
	assert.Equal(t, Go, icon.Key)

	_, ok = Resolve("FaUnknown", "Unknown")
	assert.False(t, ok)
}

func TestRegistryIsConsistent(t *testing.T) {
	for key, icon := range registry {
		assert.Equal(t, key, icon.Key)
		assert.NotEmpty(t, icon.Slug, key)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, icon.Color, key)
	}
	for name, key := range names {
		_, ok := registry[key]
		assert.True(t, ok, "alias %q points at unregistered key %q", name, key)
	}
}

func TestMonogram(t *testing.T) {
	assert.Equal(t, "HA", Monogram("Haskell"))
	assert.Equal(t, "C", Monogram("c"))
	assert.Equal(t, "?", Monogram("  "))
}

package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringFrameFreeForm(t *testing.T) {
	f := newStringFrame("}", nil, true)
	assert.Equal(t, "\"", f.allowedCharacters())

	out, err := f.addCharacter(nil, '"', "")
	require.NoError(t, err)
	assert.False(t, out.popped)
	assert.Contains(t, f.allowedCharacters(), "a")

	out, err = f.addCharacter(nil, 'h', "")
	require.NoError(t, err)
	assert.False(t, out.popped)

	out, err = f.addCharacter(nil, 'i', "")
	require.NoError(t, err)
	assert.False(t, out.popped)
	assert.False(t, f.canEnd())

	out, err = f.addCharacter(nil, '"', "")
	require.NoError(t, err)
	assert.False(t, out.popped)
	assert.True(t, f.canEnd())
	assert.Equal(t, "}", f.allowedCharacters())

	out, err = f.addCharacter(nil, '}', "")
	require.NoError(t, err)
	assert.True(t, out.popped)
	assert.True(t, out.hasForward)
	assert.Equal(t, '}', out.forwardChar)
	assert.Equal(t, "hi", out.payload)
}

func TestStringFrameEnumNarrowing(t *testing.T) {
	f := newStringFrame(",}", []string{"red", "green", "blue"}, true)
	_, _ = f.addCharacter(nil, '"', "")

	assert.ElementsMatch(t, []rune("rgb"), []rune(f.allowedCharacters()))

	_, _ = f.addCharacter(nil, 'r', "")
	assert.Equal(t, "e", f.allowedCharacters())

	_, _ = f.addCharacter(nil, 'e', "")
	assert.Equal(t, "d", f.allowedCharacters())

	_, _ = f.addCharacter(nil, 'd', "")
	assert.Equal(t, "\"", f.allowedCharacters())
}

func TestStringFrameKeyTerminatesOnColonOnly(t *testing.T) {
	// The object frame consumes the opening '"' itself and never forwards
	// it to the key frame it pushes (object_frame.go's stageParsingKeyOrEnd
	// case), so this frame must be driven the same way: no leading '"'.
	f := newKeyStringFrame([]string{"a"})
	assert.Equal(t, "a", f.allowedCharacters())

	out, err := f.addCharacter(nil, 'a', "")
	require.NoError(t, err)
	assert.False(t, out.popped)
	assert.Equal(t, "\"", f.allowedCharacters())

	out, err = f.addCharacter(nil, '"', "")
	require.NoError(t, err)
	assert.False(t, out.popped)
	assert.Equal(t, ":", f.allowedCharacters())

	out, err = f.addCharacter(nil, ':', "")
	require.NoError(t, err)
	assert.True(t, out.popped)
	assert.Equal(t, "a", out.payload)
	assert.Equal(t, ':', out.forwardChar)
}

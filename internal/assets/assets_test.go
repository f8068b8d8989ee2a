package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoleDecodes(t *testing.T) {
	img, err := Mole()
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, 128, b.Dx())
	assert.Equal(t, 128, b.Dy())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("badger.png")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestResource(t *testing.T) {
	res, err := Resource(MoleName)
	require.NoError(t, err)
	assert.Equal(t, MoleName, res.Name())
	assert.NotEmpty(t, res.Content())
}

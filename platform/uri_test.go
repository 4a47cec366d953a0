package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileUri(t *testing.T) {
	u := FileUri("/data/cache/pickImageResult.jpeg")
	assert.True(t, u.IsFile())
	assert.False(t, u.IsContent())
	assert.False(t, u.IsZero())
	assert.Equal(t, "/data/cache/pickImageResult.jpeg", u.FilePath())
}

func TestContentUri(t *testing.T) {
	u := ContentUri("app.provider", "pictures/pickImageResult.jpeg")
	assert.True(t, u.IsContent())
	assert.False(t, u.IsFile())
	assert.Equal(t, "", u.FilePath())

	authority, rel := u.ContentPath()
	assert.Equal(t, "app.provider", authority)
	assert.Equal(t, "pictures/pickImageResult.jpeg", rel)
}

func TestContentUriTrimsLeadingSlash(t *testing.T) {
	a := ContentUri("app.provider", "/pictures/f.jpeg")
	b := ContentUri("app.provider", "pictures/f.jpeg")
	assert.Equal(t, a, b)
}

func TestZeroUri(t *testing.T) {
	var u Uri
	assert.True(t, u.IsZero())
	assert.False(t, u.IsFile())
	assert.False(t, u.IsContent())

	authority, rel := u.ContentPath()
	assert.Empty(t, authority)
	assert.Empty(t, rel)
}

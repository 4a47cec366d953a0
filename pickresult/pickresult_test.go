package pickresult

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-source-pick/outputuri"
	"image-source-pick/platform"
	"image-source-pick/platform/fake"
)

func newNormalizer(t *testing.T, sdk int) (*Normalizer, *outputuri.Resolver) {
	t.Helper()
	dir := t.TempDir()
	store := fake.NewContentStore(dir)
	device := &fake.Device{
		SDKLevel: sdk,
		Cache:    filepath.Join(dir, "cache"),
		Pictures: filepath.Join(dir, "pictures"),
		Auth:     "app.provider",
	}
	output := outputuri.New(device, store, zerolog.Nop())
	return New(output), output
}

func TestClassify(t *testing.T) {
	data := platform.ContentUri("gallery.provider", "images/42.jpeg")
	cases := []struct {
		name    string
		payload *Payload
		kind    Kind
	}{
		{"nil payload", nil, KindCamera},
		{"capture action with data", &Payload{Action: platform.ActionImageCapture, Data: data}, KindCamera},
		{"retrieval action with data", &Payload{Action: platform.ActionGetContent, Data: data}, KindGallery},
		{"foreign action with data", &Payload{Action: "pick.action.EDIT", Data: data}, KindGallery},
		{"capture action without data", &Payload{Action: platform.ActionImageCapture}, KindCamera},
		{"empty action without data", &Payload{}, KindCamera},
		{"foreign action without data", &Payload{Action: "pick.action.EDIT"}, KindUnresolved},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, Classify(tc.payload))
		})
	}
}

// A capture payload resolves to the resolver's CURRENT output location, not
// whatever data reference the handler put in its payload.
func TestResolveCameraIgnoresPayloadData(t *testing.T) {
	n, output := newNormalizer(t, 29)
	payload := &Payload{
		Action: platform.ActionImageCapture,
		Data:   platform.ContentUri("rogue.handler", "whatever.jpeg"),
	}

	result, err := n.Resolve(payload)
	require.NoError(t, err)
	assert.True(t, result.Camera)
	assert.Equal(t, output.Resolve().Uri, result.Uri)
}

func TestResolveGalleryReturnsDataVerbatim(t *testing.T) {
	n, _ := newNormalizer(t, 29)
	data := platform.ContentUri("gallery.provider", "images/42.jpeg")

	result, err := n.Resolve(&Payload{Action: platform.ActionGetContent, Data: data})
	require.NoError(t, err)
	assert.False(t, result.Camera)
	assert.Equal(t, data, result.Uri)
}

func TestResolveNilPayloadIsCamera(t *testing.T) {
	n, output := newNormalizer(t, 22)

	result, err := n.Resolve(nil)
	require.NoError(t, err)
	assert.True(t, result.Camera)
	assert.Equal(t, output.Resolve().Uri, result.Uri)
	assert.True(t, result.Uri.IsFile())
}

func TestResolveUnresolvedFailsClosed(t *testing.T) {
	n, _ := newNormalizer(t, 29)

	result, err := n.Resolve(&Payload{Action: "pick.action.EDIT"})
	assert.ErrorIs(t, err, ErrUnresolved)
	assert.True(t, result.Uri.IsZero())
}

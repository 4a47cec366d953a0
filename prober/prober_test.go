package prober

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"image-source-pick/platform"
	"image-source-pick/platform/fake"
)

func TestCaptureHandlers(t *testing.T) {
	registry := &fake.Registry{Apps: []fake.InstalledApp{
		{Package: "com.vendor.camera", Component: "CaptureActivity", Capture: true},
		{Package: "com.other.gallery", Component: "BrowseActivity", Retrieve: true},
		{Package: "com.extra.cam", Component: "Cam", Capture: true},
	}}

	handlers := New(registry).CaptureHandlers()
	assert.Len(t, handlers, 2)
	assert.Equal(t, "com.vendor.camera", handlers[0].Package)
	assert.Equal(t, "com.extra.cam", handlers[1].Package)
	for _, h := range handlers {
		assert.Equal(t, platform.ActionImageCapture, h.Action)
	}
}

func TestCaptureHandlersEmpty(t *testing.T) {
	handlers := New(&fake.Registry{}).CaptureHandlers()
	assert.Empty(t, handlers)
}

func TestRetrievalHandlersMimeBreadth(t *testing.T) {
	registry := &fake.Registry{Apps: []fake.InstalledApp{
		{Package: "com.a.gallery", Component: "Browse", Retrieve: true},
		{Package: "com.b.docs", Component: "Docs", Retrieve: true, DocsOnly: true},
	}}
	p := New(registry)

	imageOnly := p.RetrievalHandlers(false)
	assert.Len(t, imageOnly, 1)
	assert.Equal(t, "com.a.gallery", imageOnly[0].Package)

	anyDoc := p.RetrievalHandlers(true)
	assert.Len(t, anyDoc, 2)
}

// Resolution order is the registry's own ranking and must pass through
// untouched.
func TestRetrievalHandlersPreserveRegistryOrder(t *testing.T) {
	registry := &fake.Registry{Apps: []fake.InstalledApp{
		{Package: "com.z.files", Component: "F", Retrieve: true},
		{Package: "com.a.gallery", Component: "G", Retrieve: true},
	}}

	handlers := New(registry).RetrievalHandlers(false)
	assert.Equal(t, "com.z.files", handlers[0].Package)
	assert.Equal(t, "com.a.gallery", handlers[1].Package)
}

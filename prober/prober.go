// Package prober queries the host component registry for installed
// image-source handlers. Pure query, no side effects; results are never
// cached because the installed-app set can change between calls.
package prober

import "image-source-pick/platform"

type Prober struct {
	registry platform.Registry
}

func New(registry platform.Registry) *Prober {
	return &Prober{registry: registry}
}

// CaptureHandlers returns every installed component able to service the
// image-capture action, in the host's own order. An empty result means "no
// native handler"; the caller falls back to an unbound capture intent.
func (p *Prober) CaptureHandlers() []platform.Handler {
	return p.registry.Resolve(platform.ActionImageCapture, "", false)
}

// RetrievalHandlers returns every installed component able to let the user
// browse for existing content. anyDocument widens the query from image-only
// to any openable document.
func (p *Prober) RetrievalHandlers(anyDocument bool) []platform.Handler {
	mimeType := platform.MimeImage
	if anyDocument {
		mimeType = platform.MimeAny
	}
	return p.registry.Resolve(platform.ActionGetContent, mimeType, true)
}

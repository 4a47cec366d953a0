// Package chooser merges camera and gallery handler intents into one
// user-facing chooser bundle. It compensates for two host quirks: handler
// resolution can come back empty (a synthetic unbound intent keeps the
// action representable), and on newer platform levels the native chooser UI
// only renders two alternative entries reliably, so the alternative set is
// reordered and truncated before display.
package chooser

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"image-source-pick/outputuri"
	"image-source-pick/permission"
	"image-source-pick/platform"
	"image-source-pick/prober"
)

// altCap is how many extra entries the native chooser renders reliably at
// and above SDKChooserLimit.
const altCap = 2

// preferredPackageHints mark packages that should survive truncation: a
// handler whose owning package contains one of these is what the user most
// likely wants when picking an image.
var preferredPackageHints = []string{"photo", "gallery", "album", "media"}

// SourceIntent is one action request, bound to a resolved handler or left
// unbound as a generic fallback. Capture intents carry the shared output
// location the handler must write to.
type SourceIntent struct {
	Action  string
	Mime    string
	Handler *platform.Handler // nil when unbound
	Output  *outputuri.Location
}

// IsCapture reports whether the intent requests a photo capture.
func (s SourceIntent) IsCapture() bool { return s.Action == platform.ActionImageCapture }

// Bundle is one chooser request: exactly one primary intent plus the ordered
// "also show" alternatives. Order is display order in the native chooser.
type Bundle struct {
	Title        string
	Primary      SourceIntent
	Alternatives []SourceIntent
}

// Intents returns the full display sequence, primary last, matching the
// order the intents were merged in.
func (b Bundle) Intents() []SourceIntent {
	return append(append([]SourceIntent{}, b.Alternatives...), b.Primary)
}

type Builder struct {
	prober *prober.Prober
	output *outputuri.Resolver
	gate   *permission.Gate
	device platform.Device
	log    zerolog.Logger
}

func New(p *prober.Prober, output *outputuri.Resolver, gate *permission.Gate, device platform.Device, log zerolog.Logger) *Builder {
	return &Builder{prober: p, output: output, gate: gate, device: device, log: log}
}

// Build produces one chooser bundle. anyDocument widens gallery resolution
// from image-only to any openable document; includeCamera offers capture
// handlers, unless the permission gate says the camera grant must be
// confirmed first. Never fails on empty handler sets: each attempted
// category is guaranteed at least one synthetic unbound intent.
func (b *Builder) Build(title string, anyDocument, includeCamera bool) Bundle {
	var intents []SourceIntent

	if includeCamera && !b.gate.CameraConfirmationNeeded() {
		intents = append(intents, b.captureIntents()...)
	}
	intents = append(intents, b.retrievalIntents(anyDocument)...)

	// The host chooser API wants one primary plus extras; taking the last
	// element keeps a valid primary no matter which group came up empty.
	primary := intents[len(intents)-1]
	alternatives := intents[:len(intents)-1]

	b.log.Debug().
		Str("title", title).
		Int("alternatives", len(alternatives)).
		Bool("any_document", anyDocument).
		Msg("chooser built")

	return Bundle{Title: title, Primary: primary, Alternatives: alternatives}
}

// captureIntents builds one bound intent per installed capture handler, all
// writing to the identical output location; only the handler the user picks
// is actually exercised. An empty resolution still yields one unbound
// capture intent so the action stays representable.
func (b *Builder) captureIntents() []SourceIntent {
	location := b.output.Resolve()

	handlers := b.prober.CaptureHandlers()
	if len(handlers) == 0 {
		return []SourceIntent{{Action: platform.ActionImageCapture, Output: &location}}
	}

	intents := make([]SourceIntent, 0, len(handlers))
	for i := range handlers {
		intents = append(intents, SourceIntent{
			Action:  platform.ActionImageCapture,
			Handler: &handlers[i],
			Output:  &location,
		})
	}
	return intents
}

func (b *Builder) retrievalIntents(anyDocument bool) []SourceIntent {
	mime := platform.MimeImage
	if anyDocument {
		mime = platform.MimeAny
	}

	handlers := limitHandlers(b.prober.RetrievalHandlers(anyDocument), b.device.SDK())
	if len(handlers) == 0 {
		return []SourceIntent{{Action: platform.ActionGetContent, Mime: mime}}
	}

	intents := make([]SourceIntent, 0, len(handlers))
	for i := range handlers {
		intents = append(intents, SourceIntent{
			Action:  platform.ActionGetContent,
			Mime:    mime,
			Handler: &handlers[i],
		})
	}
	return intents
}

// limitHandlers applies the chooser-UI workaround: at or above the limit
// level, when more handlers resolved than the native chooser can render,
// stable-sort preferred packages to the front and cut to the cap. Below the
// threshold, or within the cap, the set passes through untouched.
func limitHandlers(handlers []platform.Handler, sdk int) []platform.Handler {
	if sdk < platform.SDKChooserLimit || len(handlers) <= altCap {
		return handlers
	}
	limited := append([]platform.Handler{}, handlers...)
	sort.SliceStable(limited, func(i, j int) bool {
		return preferredPackage(limited[i].Package) && !preferredPackage(limited[j].Package)
	})
	return limited[:altCap]
}

func preferredPackage(pkg string) bool {
	lower := strings.ToLower(pkg)
	for _, hint := range preferredPackageHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

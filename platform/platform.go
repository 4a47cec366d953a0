// Package platform declares the ports this module needs from the host OS:
// component resolution, permission grants, content-provider access, and
// device facts. The core packages depend only on these interfaces; adapter
// packages (platform/fake for tests and the simulator, a real binding on an
// actual device) provide implementations. No I/O happens in this package.
package platform

import "io"

// Action identifiers the chooser core resolves handlers for.
const (
	ActionImageCapture = "pick.action.IMAGE_CAPTURE"
	ActionGetContent   = "pick.action.GET_CONTENT"
)

// Content-type filters used when resolving retrieval handlers.
const (
	MimeImage = "image/*"
	MimeAny   = "*/*"
)

// Permission identifiers checked by the permission gate.
const (
	PermCamera      = "perm.CAMERA"
	PermReadStorage = "perm.READ_EXTERNAL_STORAGE"
)

// SDK level thresholds where host behavior changes.
const (
	// SDKRuntimePermissions is the level at which permissions stop being
	// install-time grants and must be requested at runtime.
	SDKRuntimePermissions = 23
	// SDKProviderRequired is the level at which capture targets must be
	// provider-backed URIs instead of raw file paths.
	SDKProviderRequired = 24
	// SDKChooserLimit is the level at which the native chooser UI only
	// renders a small fixed number of alternative entries reliably.
	SDKChooserLimit = 29
)

// Handler identifies one installed component the registry resolved for an
// image-source action.
type Handler struct {
	Package   string // owning application identifier
	Component string // component identifier within the application
	Action    string // the action it was resolved for
}

// Registry is the host's component-resolution query. The result order is the
// host's own ranking and is treated as ground truth. An empty result is a
// valid answer, not an error.
type Registry interface {
	// Resolve returns every installed handler for action. mimeType and
	// openable only apply to content-retrieval actions; capture resolution
	// passes "" and false.
	Resolve(action, mimeType string, openable bool) []Handler
}

// Grants is the host's permission database. Both queries reflect the current
// state; grants can change between calls so results must never be cached.
type Grants interface {
	// Declared reports whether the host application's manifest declares
	// the permission at all.
	Declared(permission string) bool
	// Granted reports whether the permission is currently granted.
	Granted(permission string) bool
}

// ContentStore is the host's content-provider framework.
type ContentStore interface {
	// ProviderUri builds a provider-backed URI for relPath under the given
	// authority. Construction can fail on some vendor builds; callers fall
	// back to a raw file URI.
	ProviderUri(authority, relPath string) (Uri, error)
	// OpenRead opens the content behind uri for reading. Any error means
	// the content is not accessible to the host application right now; the
	// caller does not distinguish error classes.
	OpenRead(uri Uri) (io.ReadCloser, error)
}

// Device exposes static facts about the host device and application.
type Device interface {
	// SDK returns the platform SDK level.
	SDK() int
	// CacheDir returns the application-private cache directory.
	CacheDir() string
	// PicturesDir returns the application-scoped pictures directory.
	PicturesDir() string
	// Authority returns the host application's content-provider authority.
	Authority() string
}

// Env bundles the four ports. All core constructors take an Env.
type Env struct {
	Registry Registry
	Grants   Grants
	Store    ContentStore
	Device   Device
}

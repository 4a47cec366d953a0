// Package fake provides in-memory implementations of the platform ports for
// tests and the picksim simulator. The content store is backed by a real
// directory so the storage probe exercises actual file opens.
package fake

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"image-source-pick/platform"
)

// InstalledApp describes one simulated application and the image-source
// actions it can service.
type InstalledApp struct {
	Package   string
	Component string
	Capture   bool // handles the image-capture action
	Retrieve  bool // handles the content-retrieval action
	DocsOnly  bool // retrieval handler that does not serve image/* queries
}

// Registry resolves handlers from a fixed installed-app list, preserving
// list order the way the host's own ranking would.
type Registry struct {
	Apps []InstalledApp
}

func (r *Registry) Resolve(action, mimeType string, openable bool) []platform.Handler {
	var out []platform.Handler
	for _, app := range r.Apps {
		switch action {
		case platform.ActionImageCapture:
			if !app.Capture {
				continue
			}
		case platform.ActionGetContent:
			if !app.Retrieve {
				continue
			}
			if mimeType == platform.MimeImage && app.DocsOnly {
				continue
			}
		default:
			continue
		}
		out = append(out, platform.Handler{
			Package:   app.Package,
			Component: app.Component,
			Action:    action,
		})
	}
	return out
}

// Grants is a mutable permission table. Tests flip entries between calls to
// verify nothing is cached.
type Grants struct {
	DeclaredPerms map[string]bool
	GrantedPerms  map[string]bool
}

func NewGrants() *Grants {
	return &Grants{
		DeclaredPerms: make(map[string]bool),
		GrantedPerms:  make(map[string]bool),
	}
}

func (g *Grants) Declared(permission string) bool { return g.DeclaredPerms[permission] }
func (g *Grants) Granted(permission string) bool  { return g.GrantedPerms[permission] }

// Declare marks a permission as present in the manifest.
func (g *Grants) Declare(permission string) { g.DeclaredPerms[permission] = true }

// SetGranted sets the current grant state for a permission.
func (g *Grants) SetGranted(permission string, granted bool) {
	g.GrantedPerms[permission] = granted
}

// ContentStore maps provider-backed URIs onto files under Root.
type ContentStore struct {
	Root string // filesystem root backing content URIs

	// FailProvider simulates vendor builds where provider construction
	// throws on malformed internal paths.
	FailProvider bool

	// Unreadable lists URIs whose open attempt must fail regardless of the
	// backing file, simulating handlers that return references the host
	// cannot read without a storage grant.
	Unreadable map[platform.Uri]bool
}

func NewContentStore(root string) *ContentStore {
	return &ContentStore{Root: root, Unreadable: make(map[platform.Uri]bool)}
}

func (s *ContentStore) ProviderUri(authority, relPath string) (platform.Uri, error) {
	if s.FailProvider {
		return "", fmt.Errorf("provider authority %q: malformed provider path configuration", authority)
	}
	return platform.ContentUri(authority, relPath), nil
}

func (s *ContentStore) OpenRead(uri platform.Uri) (io.ReadCloser, error) {
	if s.Unreadable[uri] {
		return nil, fmt.Errorf("open %s: access denied", uri)
	}
	path, err := s.backingPath(uri)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// WriteFile writes data to the file backing uri, creating parent directories
// as needed. Simulated handlers use it to deposit capture and gallery files.
func (s *ContentStore) WriteFile(uri platform.Uri, data []byte) error {
	path, err := s.backingPath(uri)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *ContentStore) backingPath(uri platform.Uri) (string, error) {
	switch {
	case uri.IsFile():
		return uri.FilePath(), nil
	case uri.IsContent():
		_, rel := uri.ContentPath()
		return filepath.Join(s.Root, filepath.FromSlash(rel)), nil
	default:
		return "", fmt.Errorf("open %q: unsupported reference", uri)
	}
}

// Device is a fixed-fact device description.
type Device struct {
	SDKLevel int
	Cache    string
	Pictures string
	Auth     string
}

func (d *Device) SDK() int            { return d.SDKLevel }
func (d *Device) CacheDir() string    { return d.Cache }
func (d *Device) PicturesDir() string { return d.Pictures }
func (d *Device) Authority() string   { return d.Auth }

// NewEnv wires a complete fake environment rooted at dir. The device's
// pictures directory is dir/pictures and its cache directory dir/cache,
// matching how the content store maps provider paths.
func NewEnv(dir string, sdk int, apps []InstalledApp) (platform.Env, *Registry, *Grants, *ContentStore, *Device) {
	registry := &Registry{Apps: apps}
	grants := NewGrants()
	store := NewContentStore(dir)
	device := &Device{
		SDKLevel: sdk,
		Cache:    filepath.Join(dir, "cache"),
		Pictures: filepath.Join(dir, "pictures"),
		Auth:     "image.source.pick.fileprovider",
	}
	env := platform.Env{Registry: registry, Grants: grants, Store: store, Device: device}
	return env, registry, grants, store, device
}

// Package outputuri decides where a freshly captured image is written.
// Modern platform levels require a provider-backed URI; legacy levels and
// broken vendor builds get a raw file path instead.
package outputuri

import (
	"path"
	"path/filepath"

	"github.com/rs/zerolog"

	"image-source-pick/platform"
)

// CaptureFileName is the fixed name of the capture target. Repeated captures
// overwrite the same file; only one capture is in flight per session.
const CaptureFileName = "pickImageResult.jpeg"

// picturesRel is the provider-relative folder corresponding to the device's
// pictures directory.
const picturesRel = "pictures"

// Location is a writable target for a captured photo. The underlying file
// exists only after a successful capture.
type Location struct {
	Uri            platform.Uri
	ProviderBacked bool
}

type Resolver struct {
	device platform.Device
	store  platform.ContentStore
	log    zerolog.Logger
}

func New(device platform.Device, store platform.ContentStore, log zerolog.Logger) *Resolver {
	return &Resolver{device: device, store: store, log: log}
}

// Resolve produces the capture target for the current platform level.
// Idempotent: every call in a process names the same physical file.
func (r *Resolver) Resolve() Location {
	if r.device.SDK() >= platform.SDKProviderRequired {
		uri, err := r.store.ProviderUri(r.device.Authority(), path.Join(picturesRel, CaptureFileName))
		if err == nil {
			return Location{Uri: uri, ProviderBacked: true}
		}
		// Seen on some vendor builds with malformed provider paths.
		r.log.Warn().Err(err).Msg("provider uri construction failed, using raw file path")
		return Location{Uri: platform.FileUri(filepath.Join(r.device.PicturesDir(), CaptureFileName))}
	}
	return Location{Uri: platform.FileUri(filepath.Join(r.device.CacheDir(), CaptureFileName))}
}

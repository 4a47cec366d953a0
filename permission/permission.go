// Package permission decides whether an OS-level grant must be explicitly
// requested before a capture or read will succeed. Verdicts are recomputed
// on every call; grants can change between showing the chooser and reading
// its result.
package permission

import (
	"github.com/rs/zerolog"

	"image-source-pick/platform"
)

// Reason classifies why a verdict came back positive.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonCameraDeclaredDenied: the manifest declares the camera
	// permission and the host currently reports it as not granted.
	ReasonCameraDeclaredDenied
	// ReasonStorageProbeFailed: the read grant is denied and an actual open
	// attempt against the candidate reference failed.
	ReasonStorageProbeFailed
)

// Verdict is the outcome of one permission check. Never persisted.
type Verdict struct {
	Needed bool
	Reason Reason
}

type Gate struct {
	device platform.Device
	grants platform.Grants
	store  platform.ContentStore
	log    zerolog.Logger
}

func New(device platform.Device, grants platform.Grants, store platform.ContentStore, log zerolog.Logger) *Gate {
	return &Gate{device: device, grants: grants, store: store, log: log}
}

// CameraVerdict reports whether the camera permission must be explicitly
// requested before offering capture handlers. Positive only when the
// platform has runtime permissions, the manifest declares the permission,
// AND the host currently reports it as not granted. Declaration alone is
// not enough.
func (g *Gate) CameraVerdict() Verdict {
	if g.device.SDK() < platform.SDKRuntimePermissions {
		return Verdict{}
	}
	if g.grants.Declared(platform.PermCamera) && !g.grants.Granted(platform.PermCamera) {
		return Verdict{Needed: true, Reason: ReasonCameraDeclaredDenied}
	}
	return Verdict{}
}

// StorageVerdict reports whether the storage read grant must be requested
// before candidate can be read. The empirical open attempt is authoritative
// over any manifest inspection: handlers vary in whether references they
// returned actually need the grant, so a declarative check would both over-
// and under-report. Every open failure counts the same, whatever its cause.
func (g *Gate) StorageVerdict(candidate platform.Uri) Verdict {
	if g.device.SDK() < platform.SDKRuntimePermissions {
		return Verdict{}
	}
	if g.grants.Granted(platform.PermReadStorage) {
		return Verdict{}
	}
	rc, err := g.store.OpenRead(candidate)
	if err != nil {
		g.log.Debug().Err(err).Str("uri", candidate.String()).Msg("storage probe failed")
		return Verdict{Needed: true, Reason: ReasonStorageProbeFailed}
	}
	_ = rc.Close()
	return Verdict{}
}

// CameraConfirmationNeeded is the boolean form of CameraVerdict.
func (g *Gate) CameraConfirmationNeeded() bool {
	return g.CameraVerdict().Needed
}

// StorageConfirmationNeeded is the boolean form of StorageVerdict.
func (g *Gate) StorageConfirmationNeeded(candidate platform.Uri) bool {
	return g.StorageVerdict(candidate).Needed
}

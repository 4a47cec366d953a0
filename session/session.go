// Package session binds the chooser core together for one pick session:
// request a chooser, hand the user's raw result back for normalization, and
// answer the permission questions in between. Every call re-queries the
// host ports; nothing is cached across the gap between showing the chooser
// and reading its result.
package session

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"image-source-pick/chooser"
	"image-source-pick/logutil"
	"image-source-pick/outputuri"
	"image-source-pick/permission"
	"image-source-pick/pickresult"
	"image-source-pick/platform"
	"image-source-pick/prober"
)

var ErrEmptyTitle = errors.New("chooser title is required")

// Picker is the façade the surrounding activity glue talks to. Synchronous
// and single-flight: one chooser shown, one result resolved.
type Picker struct {
	builder    *chooser.Builder
	gate       *permission.Gate
	normalizer *pickresult.Normalizer
	log        zerolog.Logger
	sessionID  string
}

func New(env platform.Env) *Picker {
	log := logutil.Logger("session")
	output := outputuri.New(env.Device, env.Store, logutil.Logger("outputuri"))
	gate := permission.New(env.Device, env.Grants, env.Store, logutil.Logger("permission"))
	p := prober.New(env.Registry)
	return &Picker{
		builder:    chooser.New(p, output, gate, env.Device, logutil.Logger("chooser")),
		gate:       gate,
		normalizer: pickresult.New(output),
		log:        log,
	}
}

// RequestImageSource builds the chooser bundle for one new pick session.
// anyDocument widens gallery resolution to any openable document;
// includeCamera offers capture handlers when the camera grant does not need
// confirmation first.
func (p *Picker) RequestImageSource(title string, anyDocument, includeCamera bool) (chooser.Bundle, error) {
	if title == "" {
		return chooser.Bundle{}, ErrEmptyTitle
	}
	p.sessionID = uuid.NewString()
	bundle := p.builder.Build(title, anyDocument, includeCamera)
	p.log.Info().
		Str("session", p.sessionID).
		Int("alternatives", len(bundle.Alternatives)).
		Msg("image source chooser requested")
	return bundle, nil
}

// ResolvePickedResult normalizes the raw payload the chosen handler
// returned. Returns pickresult.ErrUnresolved when the payload identifies
// neither path; callers surface that as a failed pick, never a crash.
func (p *Picker) ResolvePickedResult(payload *pickresult.Payload) (pickresult.Result, error) {
	result, err := p.normalizer.Resolve(payload)
	if err != nil {
		p.log.Warn().Str("session", p.sessionID).Err(err).Msg("pick result unresolved")
		return pickresult.Result{}, err
	}
	p.log.Info().
		Str("session", p.sessionID).
		Bool("camera", result.Camera).
		Str("uri", result.Uri.String()).
		Msg("pick result resolved")
	return result, nil
}

// CameraPermissionConfirmationNeeded re-evaluates the camera grant posture.
func (p *Picker) CameraPermissionConfirmationNeeded() bool {
	return p.gate.CameraConfirmationNeeded()
}

// StoragePermissionConfirmationNeeded re-evaluates whether candidate can be
// read right now, probing the actual stream rather than trusting manifests.
func (p *Picker) StoragePermissionConfirmationNeeded(candidate platform.Uri) bool {
	return p.gate.StorageConfirmationNeeded(candidate)
}

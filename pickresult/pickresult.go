// Package pickresult normalizes the raw payload whichever handler the user
// picked returned into one canonical image reference. Handlers disagree
// about what they hand back: capture handlers often return an empty payload
// (the photo is at the location they were told to write to), gallery
// handlers return the picked reference as payload data.
package pickresult

import (
	"errors"

	"image-source-pick/outputuri"
	"image-source-pick/platform"
)

// ErrUnresolved is returned when the payload carries neither a data
// reference nor the capture action, so there is nothing to hand back.
var ErrUnresolved = errors.New("pick result carries no data reference and no capture action")

// Kind is the closed classification of a raw handler payload.
type Kind int

const (
	// KindCamera: the capture path; the canonical reference is the current
	// output location, not anything in the payload.
	KindCamera Kind = iota
	// KindGallery: the retrieval path; the payload's data reference is
	// returned verbatim.
	KindGallery
	// KindUnresolved: no data reference and a non-capture action. Fails
	// closed instead of dereferencing nothing.
	KindUnresolved
)

// Payload is the raw result a handler returned. A nil *Payload means the
// handler returned nothing at all.
type Payload struct {
	Action string
	Data   platform.Uri
}

// Classify decides the payload kind once, with no side effects.
//
// A payload with a data reference is camera-originated only when its action
// is exactly the capture action; any other action means the user browsed to
// existing content. Without a data reference the capture action (or no
// payload at all, which capture handlers commonly produce) still means
// camera; a foreign action with no data is unresolvable.
func Classify(p *Payload) Kind {
	if p == nil {
		return KindCamera
	}
	if !p.Data.IsZero() {
		if p.Action == platform.ActionImageCapture {
			return KindCamera
		}
		return KindGallery
	}
	if p.Action == platform.ActionImageCapture || p.Action == "" {
		return KindCamera
	}
	return KindUnresolved
}

// Result is the canonical outcome of one pick session. Ownership passes to
// the caller on return.
type Result struct {
	Uri    platform.Uri
	Camera bool
}

type Normalizer struct {
	output *outputuri.Resolver
}

func New(output *outputuri.Resolver) *Normalizer {
	return &Normalizer{output: output}
}

// Resolve turns a raw payload into the canonical result. On the camera path
// the output location is recomputed here rather than reusing the reference
// the capture intents carried: that is where the handler was instructed to
// write, regardless of what its payload says.
func (n *Normalizer) Resolve(p *Payload) (Result, error) {
	switch Classify(p) {
	case KindCamera:
		return Result{Uri: n.output.Resolve().Uri, Camera: true}, nil
	case KindGallery:
		return Result{Uri: p.Data}, nil
	default:
		return Result{}, ErrUnresolved
	}
}

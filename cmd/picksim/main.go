// picksim runs one simulated pick session against a fabricated device: an
// installed-app set, SDK level, and grant table come from flags, the chooser
// is built, a pick is simulated, and the normalized result is printed. The
// simulated camera grabs the real screen when a display is available.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/kbinani/screenshot"
	"github.com/spf13/cobra"

	"image-source-pick/chooser"
	"image-source-pick/config"
	"image-source-pick/logutil"
	"image-source-pick/pickresult"
	"image-source-pick/platform"
	"image-source-pick/platform/fake"
	"image-source-pick/session"
)

const galleryAuthority = "sim.gallery.provider"

type cliOptions struct {
	sdk           int
	apps          []string
	declareCamera bool
	grantCamera   bool
	grantStorage  bool
	title         string
	anyDocument   bool
	noCamera      bool
	pick          int
	jsonOutput    bool

	out io.Writer
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts := &cliOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(os.Args[1:])
	return cmd.Execute()
}

func newRootCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "picksim",
		Short:         "Simulate an image-source pick session",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithOptions(*opts)
		},
	}

	cmd.Flags().IntVar(&opts.sdk, "sdk", 0, "Platform SDK level (default from config)")
	cmd.Flags().StringArrayVar(&opts.apps, "app", nil,
		"Installed app as pkg/Component:caps, caps from capture,retrieve,docs (repeatable)")
	cmd.Flags().BoolVar(&opts.declareCamera, "declare-camera", false, "Declare the camera permission in the manifest")
	cmd.Flags().BoolVar(&opts.grantCamera, "grant-camera", false, "Grant the camera permission")
	cmd.Flags().BoolVar(&opts.grantStorage, "grant-storage", false, "Grant the storage read permission")
	cmd.Flags().StringVar(&opts.title, "title", "", "Chooser title (default from config)")
	cmd.Flags().BoolVar(&opts.anyDocument, "any-document", false, "Offer any-document handlers instead of image-only")
	cmd.Flags().BoolVar(&opts.noCamera, "no-camera", false, "Leave camera handlers out of the chooser")
	cmd.Flags().IntVar(&opts.pick, "pick", -1, "Display-order index to pick (-1 picks the primary)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")

	return cmd
}

func runWithOptions(opts cliOptions) error {
	cfg, err := config.LoadWithOptions(config.LoadOptions{SDKOverride: opts.sdk})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logutil.Setup(cfg.EnableFileLogging)

	out := opts.out
	if out == nil {
		out = os.Stdout
	}

	apps, err := parseApps(opts.apps)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		apps = defaultApps()
	}

	root, err := os.MkdirTemp("", "picksim")
	if err != nil {
		return err
	}
	defer os.RemoveAll(root)

	env, _, grants, store, device := fake.NewEnv(root, cfg.SDK, apps)
	device.Auth = cfg.Authority
	if opts.declareCamera {
		grants.Declare(platform.PermCamera)
	}
	grants.SetGranted(platform.PermCamera, opts.grantCamera)
	grants.SetGranted(platform.PermReadStorage, opts.grantStorage)

	picker := session.New(env)

	title := opts.title
	if title == "" {
		title = cfg.DefaultTitle
	}
	bundle, err := picker.RequestImageSource(title, opts.anyDocument, !opts.noCamera)
	if err != nil {
		return err
	}

	intents := bundle.Intents()
	idx := opts.pick
	if idx < 0 {
		idx = len(intents) - 1 // primary
	}
	if idx >= len(intents) {
		return fmt.Errorf("--pick %d out of range, chooser has %d entries", idx, len(intents))
	}
	picked := intents[idx]

	payload, err := simulateHandler(store, picked)
	if err != nil {
		return fmt.Errorf("simulate handler: %w", err)
	}

	result, err := picker.ResolvePickedResult(payload)
	if err != nil {
		return err
	}
	storageNeeded := picker.StoragePermissionConfirmationNeeded(result.Uri)

	return report(out, bundle, picked, result, storageNeeded, opts.jsonOutput)
}

// simulateHandler plays the role of the component the user picked: a capture
// handler writes a photo to the output location and returns no payload, a
// retrieval handler seeds a gallery file and returns its reference.
func simulateHandler(store *fake.ContentStore, picked chooser.SourceIntent) (*pickresult.Payload, error) {
	if picked.IsCapture() {
		if err := store.WriteFile(picked.Output.Uri, capturedPNG()); err != nil {
			return nil, err
		}
		return nil, nil
	}
	galleryUri := platform.ContentUri(galleryAuthority, "images/sample.png")
	if err := store.WriteFile(galleryUri, capturedPNG()); err != nil {
		return nil, err
	}
	return &pickresult.Payload{Action: platform.ActionGetContent, Data: galleryUri}, nil
}

// capturedPNG grabs the primary display when one exists, otherwise encodes a
// small generated image so headless runs still work.
func capturedPNG() []byte {
	var img image.Image
	if screenshot.NumActiveDisplays() > 0 {
		if grabbed, err := screenshot.CaptureDisplay(0); err == nil {
			img = grabbed
		}
	}
	if img == nil {
		img = placeholderImage()
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

func placeholderImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(4 * x), G: uint8(4 * y), B: 128, A: 255})
		}
	}
	return img
}

// parseApps turns "pkg/Component:caps" flags into installed apps.
func parseApps(specs []string) ([]fake.InstalledApp, error) {
	var apps []fake.InstalledApp
	for _, spec := range specs {
		ident, caps, ok := strings.Cut(spec, ":")
		if !ok {
			return nil, fmt.Errorf("app %q: want pkg/Component:caps", spec)
		}
		pkg, component, ok := strings.Cut(ident, "/")
		if !ok || pkg == "" || component == "" {
			return nil, fmt.Errorf("app %q: want pkg/Component:caps", spec)
		}
		app := fake.InstalledApp{Package: pkg, Component: component}
		for _, c := range strings.Split(caps, ",") {
			switch strings.TrimSpace(c) {
			case "capture":
				app.Capture = true
			case "retrieve":
				app.Retrieve = true
			case "docs":
				app.DocsOnly = true
			case "":
			default:
				return nil, fmt.Errorf("app %q: unknown capability %q", spec, c)
			}
		}
		if !app.Capture && !app.Retrieve {
			return nil, fmt.Errorf("app %q: needs capture or retrieve", spec)
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func defaultApps() []fake.InstalledApp {
	return []fake.InstalledApp{
		{Package: "com.sim.camera", Component: "CaptureActivity", Capture: true},
		{Package: "com.sim.gallery", Component: "BrowseActivity", Retrieve: true},
		{Package: "com.sim.files", Component: "FilesActivity", Retrieve: true, DocsOnly: true},
	}
}

type intentReport struct {
	Action  string `json:"action"`
	Mime    string `json:"mime,omitempty"`
	Package string `json:"package,omitempty"`
	Output  string `json:"output,omitempty"`
}

type sessionReport struct {
	Title                     string         `json:"title"`
	Primary                   intentReport   `json:"primary"`
	Alternatives              []intentReport `json:"alternatives"`
	Picked                    intentReport   `json:"picked"`
	ResultUri                 string         `json:"result_uri"`
	Camera                    bool           `json:"camera"`
	StorageConfirmationNeeded bool           `json:"storage_confirmation_needed"`
}

func describeIntent(i chooser.SourceIntent) intentReport {
	r := intentReport{Action: i.Action, Mime: i.Mime}
	if i.Handler != nil {
		r.Package = i.Handler.Package
	}
	if i.Output != nil {
		r.Output = i.Output.Uri.String()
	}
	return r
}

func report(out io.Writer, bundle chooser.Bundle, picked chooser.SourceIntent, result pickresult.Result, storageNeeded, asJSON bool) error {
	if asJSON {
		rep := sessionReport{
			Title:                     bundle.Title,
			Primary:                   describeIntent(bundle.Primary),
			Picked:                    describeIntent(picked),
			ResultUri:                 result.Uri.String(),
			Camera:                    result.Camera,
			StorageConfirmationNeeded: storageNeeded,
		}
		for _, alt := range bundle.Alternatives {
			rep.Alternatives = append(rep.Alternatives, describeIntent(alt))
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Fprintf(out, "Chooser: %s\n", bundle.Title)
	fmt.Fprintf(out, "  primary: %s\n", intentLine(bundle.Primary))
	for _, alt := range bundle.Alternatives {
		fmt.Fprintf(out, "  also:    %s\n", intentLine(alt))
	}
	fmt.Fprintf(out, "Picked:  %s\n", intentLine(picked))
	source := "gallery"
	if result.Camera {
		source = "camera"
	}
	fmt.Fprintf(out, "Result:  %s (%s), storage confirmation needed: %v\n", result.Uri, source, storageNeeded)
	return nil
}

func intentLine(i chooser.SourceIntent) string {
	who := "<any handler>"
	if i.Handler != nil {
		who = i.Handler.Package + "/" + i.Handler.Component
	}
	if i.IsCapture() {
		return fmt.Sprintf("capture via %s -> %s", who, i.Output.Uri)
	}
	return fmt.Sprintf("retrieve (%s) via %s", i.Mime, who)
}

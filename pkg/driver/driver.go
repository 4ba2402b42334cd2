// Package driver runs the clock display loop: a 1 Hz tick that advances
// the time reference and repaints the hands, and resize coordination that
// pauses ticking, debounces layout work, and resumes.
//
// The driver owns all mutable display state (the time reference, the
// current face layout, the retained face display list). Everything runs
// on the single goroutine inside Run; collaborators interact only through
// Resize and the Surface callback.
package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/go-drift/clockface/pkg/dial"
	"github.com/go-drift/clockface/pkg/errors"
	"github.com/go-drift/clockface/pkg/rendering"
	"github.com/go-drift/clockface/pkg/timesync"
)

const (
	// DefaultTickInterval drives the once-per-second hand update.
	DefaultTickInterval = time.Second
	// DefaultResizeDebounce delays relayout until a resize burst subsides.
	DefaultResizeDebounce = 200 * time.Millisecond
)

// Frame is one published rendering of the clock. Face is the retained
// static layer, reused across ticks and rebuilt only on relayout; Hands
// is regenerated every tick. Replaying Face then Hands onto a canvas
// yields the complete picture.
type Frame struct {
	Size  rendering.Size
	Face  *rendering.DisplayList
	Hands *rendering.DisplayList
	Date  string
	Time  time.Time
}

// Surface consumes published frames. Implementations must not retain the
// goroutine: Present is called from the driver loop and should hand the
// frame off quickly.
type Surface interface {
	Present(frame Frame)
}

// Options configures a Driver. Zero durations fall back to the defaults.
type Options struct {
	Theme          dial.Theme
	Size           rendering.Size
	TickInterval   time.Duration
	ResizeDebounce time.Duration
}

// Driver owns the clock display state and runs the update loop.
type Driver struct {
	surface  Surface
	theme    dial.Theme
	ref      *timesync.Reference
	interval time.Duration
	debounce time.Duration
	initial  rendering.Size

	// Display state, owned by the Run goroutine.
	face     dial.Face
	faceList *rendering.DisplayList
	lengths  dial.HandLengths

	resizeCh chan rendering.Size
}

// New creates a driver. A nil surface or an empty viewport is a fatal
// configuration error: the display cannot mount, so there is nothing to
// recover at runtime.
func New(ref *timesync.Reference, surface Surface, opts Options) (*Driver, error) {
	if surface == nil {
		return nil, &errors.Error{
			Op:   "driver.New",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("no rendering surface provided"),
		}
	}
	if ref == nil {
		return nil, &errors.Error{
			Op:   "driver.New",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("no time reference provided"),
		}
	}
	if opts.Size.IsEmpty() {
		return nil, &errors.Error{
			Op:   "driver.New",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("viewport %gx%g is empty", opts.Size.Width, opts.Size.Height),
		}
	}

	interval := opts.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	debounce := opts.ResizeDebounce
	if debounce <= 0 {
		debounce = DefaultResizeDebounce
	}

	return &Driver{
		surface:  surface,
		theme:    opts.Theme,
		ref:      ref,
		interval: interval,
		debounce: debounce,
		initial:  opts.Size,
		resizeCh: make(chan rendering.Size, 1),
	}, nil
}

// Resize requests a relayout for a new viewport size. It never blocks;
// during a burst of events only the latest size is kept, and the debounce
// in the run loop decides when layout actually happens.
func (d *Driver) Resize(size rendering.Size) {
	for {
		select {
		case d.resizeCh <- size:
			return
		default:
			select {
			case <-d.resizeCh:
			default:
			}
		}
	}
}

// Run lays out the face, publishes the first frame at the acquired time,
// then ticks once per interval until the context is cancelled. Resize
// events pause the ticker, debounce, relayout, force one immediate tick
// and resume.
func (d *Driver) Run(ctx context.Context) error {
	d.relayout(d.initial)
	d.publish()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	var (
		debounce  *time.Timer
		debounceC <-chan time.Time
		pending   rendering.Size
	)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case size := <-d.resizeCh:
			// Pause ticking while the viewport is in flux. Any pending
			// debounce timer is cleared before a new one starts.
			ticker.Stop()
			if debounce != nil {
				debounce.Stop()
			}
			pending = size
			debounce = time.NewTimer(d.debounce)
			debounceC = debounce.C

		case <-debounceC:
			debounceC = nil
			d.relayout(pending)
			d.tick()
			ticker.Reset(d.interval)

		case <-ticker.C:
			d.tick()
		}
	}
}

// relayout regenerates the face geometry, the retained face layer and the
// hand lengths for a viewport size.
func (d *Driver) relayout(size rendering.Size) {
	d.face = dial.BuildFace(size)
	d.faceList = dial.PaintFace(d.face, d.theme)
	d.lengths = dial.ScaleHands(d.face.Radius)
}

// tick advances the reference by one second and publishes a frame.
func (d *Driver) tick() {
	d.ref.Advance()
	d.publish()
}

// publish derives hand angles from the current reference and hands a
// frame to the surface.
func (d *Driver) publish() {
	angles := dial.AnglesAt(d.ref.Time())
	hands := dial.PaintHands(d.face, d.lengths, angles, d.theme)
	d.surface.Present(Frame{
		Size:  d.face.Size,
		Face:  d.faceList,
		Hands: hands,
		Date:  d.ref.DateString(),
		Time:  d.ref.Time(),
	})
}

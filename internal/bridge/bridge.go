// internal/bridge/bridge.go
package bridge

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tamzrod/glove-bridge/internal/frame"
	"github.com/tamzrod/glove-bridge/internal/link"
	"github.com/tamzrod/glove-bridge/internal/sensor"
	"github.com/tamzrod/glove-bridge/internal/status"
	"github.com/tamzrod/glove-bridge/internal/writer"
)

var (
	ErrNotInitialized = errors.New("bridge: not initialized")
	ErrShutdown       = errors.New("bridge: shut down")
)

// CodeSourceFailed is reported as last error when the contact source
// failed its last poll while the link itself is healthy.
const CodeSourceFailed uint16 = 0x10

// Options carries the optional collaborators of a Bridge.
type Options struct {
	Logger zerolog.Logger

	// LinkErr is the error returned when the link was opened, if any.
	// It is reported once by Initialize.
	LinkErr error

	// Mirror is nil when no mirror is configured.
	Mirror *writer.Mirror
}

// Bridge owns one hand: its binding table, its serial link and its mirror.
// All methods are called from a single goroutine.
type Bridge struct {
	id     string
	link   link.Link
	mirror *writer.Mirror
	log    zerolog.Logger

	table   *sensor.Table
	linkErr error
	shut    bool

	snap         status.Snapshot
	linkDisabled bool
	linkFailing  bool
	srcFailing   bool
	mirrorFail   bool
}

// New builds a bridge around an opened (or down) link.
// The bridge emits nothing until Initialize installs the bindings.
func New(id string, l link.Link, opts Options) *Bridge {
	return &Bridge{
		id:      id,
		link:    l,
		mirror:  opts.Mirror,
		log:     opts.Logger.With().Str("bridge", id).Logger(),
		linkErr: opts.LinkErr,
		snap:    status.Snapshot{Health: status.HealthUnknown},
	}
}

// Initialize installs the binding table and reports, once, every
// condition that will persist for the life of the bridge: unbound
// sensors and a link that failed to open.
func (b *Bridge) Initialize(table *sensor.Table) error {
	if b.shut {
		return ErrShutdown
	}
	if table == nil {
		return errors.New("bridge: nil binding table")
	}
	if b.table != nil {
		return errors.New("bridge: already initialized")
	}
	b.table = table

	unbound := table.Unbound()
	for _, id := range unbound {
		b.log.Warn().Str("sensor", id.Name()).Msg("sensor not bound, reads as no contact")
	}

	switch {
	case errors.Is(b.linkErr, link.ErrUnknownDriver):
		b.linkDisabled = true
		b.snap.Health = status.HealthDisabled
		b.snap.LastErrorCode = errorCode(b.linkErr)
		b.log.Error().Err(b.linkErr).Msg("serial link disabled, frames will be encoded but not sent")
	case b.linkErr != nil:
		b.linkFailing = true
		b.snap.Health = status.HealthError
		b.snap.LastErrorCode = errorCode(b.linkErr)
		b.log.Error().Err(b.linkErr).Msg("serial link down, frames will be encoded but not sent")
	}

	b.log.Info().
		Int("bound", frame.SensorCount-len(unbound)).
		Int("unbound", len(unbound)).
		Bool("mirror", b.mirror != nil).
		Msg("bridge initialized")

	b.writeStatus()
	return nil
}

// EncodeAndSend samples every sensor, encodes the frame and writes it
// to the link. A frame is always produced once initialized, even when
// nothing is bound. The returned error is the link error, if any;
// mirror failures are logged and never returned.
func (b *Bridge) EncodeAndSend() (string, error) {
	if b.shut {
		return "", ErrShutdown
	}
	if b.table == nil {
		return "", ErrNotInitialized
	}

	snap := frame.Capture(b.table.Sample())
	f := snap.Format()

	err := b.link.WriteFrame(f)
	b.observeLink(err)
	b.mirrorMasks(snap)

	if err != nil {
		return f, fmt.Errorf("bridge %s: %w", b.id, err)
	}
	return f, nil
}

// Shutdown closes the link and the mirror. Safe to call twice.
func (b *Bridge) Shutdown() error {
	if b.shut {
		return nil
	}
	b.shut = true

	var errs []error
	if err := b.link.Close(); err != nil {
		errs = append(errs, fmt.Errorf("link close: %w", err))
	}
	if err := b.mirror.Close(); err != nil {
		errs = append(errs, fmt.Errorf("mirror close: %w", err))
	}

	b.log.Info().Uint32("frames_sent", b.snap.FramesSent).Msg("bridge shut down")
	return errors.Join(errs...)
}

// Status returns the current link status snapshot.
func (b *Bridge) Status() status.Snapshot { return b.snap }

// ---- state tracking ----

// observeLink updates counters and health after a frame write.
// Failures are logged on transition only, not every tick.
func (b *Bridge) observeLink(err error) {
	if b.linkDisabled {
		// Already reported by Initialize; nothing can change.
		return
	}
	if err == nil {
		b.snap.FramesSent++
		if b.linkFailing {
			b.linkFailing = false
			b.log.Info().Msg("serial link recovered")
		}
		b.refreshHealth()
		return
	}

	code := errorCode(err)
	if !b.linkFailing || b.snap.LastErrorCode != code {
		b.log.Error().Err(err).Uint16("code", code).Msg("frame write failed")
	}
	b.linkFailing = true
	b.snap.LastErrorCode = code
	b.refreshHealth()
}

// observeSource records whether the last poll succeeded.
func (b *Bridge) observeSource(err error) {
	if err != nil && !b.srcFailing {
		b.log.Warn().Err(err).Msg("contact source poll failed, sensors read as no contact")
	}
	if err == nil && b.srcFailing {
		b.log.Info().Msg("contact source recovered")
	}
	b.srcFailing = err != nil
	b.refreshHealth()
}

// refreshHealth derives health from link and source state and pushes
// the status block when health or error code changed.
func (b *Bridge) refreshHealth() {
	prev := b.snap

	switch {
	case b.linkDisabled:
		b.snap.Health = status.HealthDisabled
	case b.linkFailing:
		b.snap.Health = status.HealthError
	case b.srcFailing:
		b.snap.Health = status.HealthStale
		b.snap.LastErrorCode = CodeSourceFailed
	default:
		b.snap.Health = status.HealthOK
		b.snap.LastErrorCode = 0
		// Reset seconds-in-error on recovery.
		b.snap.SecondsInError = 0
	}

	if prev.Health != b.snap.Health || prev.LastErrorCode != b.snap.LastErrorCode {
		b.writeStatus()
	}
}

// tickSecond advances seconds-in-error while the link or the source is
// failing and refreshes the status block. Driven by the 1 Hz ticker.
// Unknown (nothing sent yet) and Disabled are not error states.
func (b *Bridge) tickSecond() {
	failing := b.snap.Health == status.HealthError || b.snap.Health == status.HealthStale
	if failing && b.snap.SecondsInError < status.MaxSecondsInError {
		b.snap.SecondsInError++
	}
	b.writeStatus()
}

// ---- mirror ----

func (b *Bridge) mirrorMasks(s frame.Snapshot) {
	if b.mirror == nil || b.mirror.Masks == nil {
		return
	}
	b.observeMirror(b.mirror.Masks.Write(s))
}

func (b *Bridge) writeStatus() {
	if b.mirror == nil || b.mirror.Status == nil {
		return
	}
	b.observeMirror(b.mirror.Status.WriteStatus(b.snap))
}

func (b *Bridge) observeMirror(err error) {
	switch {
	case err != nil && !b.mirrorFail:
		b.log.Warn().Err(err).Msg("mirror write failed")
	case err == nil && b.mirrorFail:
		b.log.Info().Msg("mirror recovered")
	}
	b.mirrorFail = err != nil
}

// errorCode extracts a best-effort uint16 code from an error without assuming concrete types.
// If the error does not expose a code, returns 1 (generic error).
func errorCode(err error) uint16 {
	if err == nil {
		return 0
	}

	var c interface{ Code() uint16 }
	if errors.As(err, &c) {
		return c.Code()
	}
	return 1
}

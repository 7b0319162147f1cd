// internal/link/link_test.go
package link

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/glove-bridge/internal/frame"
)

// ---- fake port ----

type fakePort struct {
	buf      bytes.Buffer
	chunk    int // max bytes accepted per Write; 0 = unlimited
	writeErr error
	closed   int
}

func (f *fakePort) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	if f.chunk > 0 && len(p) > f.chunk {
		p = p[:f.chunk]
	}
	return f.buf.Write(p)
}

func (f *fakePort) Close() error {
	f.closed++
	return nil
}

type stuckPort struct{ fakePort }

func (s *stuckPort) Write(p []byte) (int, error) { return 0, nil }

func openerFor(p Port, err error) Opener {
	return func(string, Options) (Port, error) {
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

// ---- tests ----

func TestWriteFrame_Delimited(t *testing.T) {
	port := &fakePort{}
	s, err := Open("/dev/ttyACM0", Options{}, openerFor(port, nil))
	require.NoError(t, err)
	require.True(t, s.Up())

	f := frame.EncodeFrame(frame.Hand{})
	require.NoError(t, s.WriteFrame(f))

	assert.Equal(t, "<"+f+">", port.buf.String())
	assert.Len(t, port.buf.String(), frame.FrameLen+2)
}

func TestWriteFrame_PartialWritesCompleted(t *testing.T) {
	port := &fakePort{chunk: 7}
	s := NewSerial("/dev/ttyACM0", port)

	var h frame.Hand
	h[frame.Thumb][frame.Segment0][0] = true

	require.NoError(t, s.WriteFrame(frame.EncodeFrame(h)))
	assert.Equal(t, "<001000000000000000000000000000>", port.buf.String())
}

func TestWriteFrame_ZeroProgressIsShortWrite(t *testing.T) {
	s := NewSerial("/dev/ttyACM0", &stuckPort{})

	err := s.WriteFrame(frame.EncodeFrame(frame.Hand{}))
	require.Error(t, err)

	var le *Error
	require.True(t, errors.As(err, &le))
	assert.Equal(t, CodeShortWrite, le.Code())
}

func TestOpenFailure_LinkDown(t *testing.T) {
	s, err := Open("COM5", Options{}, openerFor(nil, errors.New("no such device")))
	require.Error(t, err)
	require.NotNil(t, s)
	assert.False(t, s.Up())

	werr := s.WriteFrame(frame.EncodeFrame(frame.Hand{}))
	assert.ErrorIs(t, werr, ErrLinkDown)

	var le *Error
	require.True(t, errors.As(werr, &le))
	assert.Equal(t, CodeLinkDown, le.Code())

	assert.NoError(t, s.Close())
}

func TestWriteFrame_PortError(t *testing.T) {
	boom := errors.New("device unplugged")
	s := NewSerial("/dev/ttyACM0", &fakePort{writeErr: boom})

	err := s.WriteFrame(frame.EncodeFrame(frame.Hand{}))
	assert.ErrorIs(t, err, boom)

	var le *Error
	require.True(t, errors.As(err, &le))
	assert.Equal(t, CodeWrite, le.Code())
}

func TestClose_Idempotent(t *testing.T) {
	port := &fakePort{}
	s := NewSerial("/dev/ttyACM0", port)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 1, port.closed)
	assert.False(t, s.Up())
	assert.ErrorIs(t, s.WriteFrame(frame.EncodeFrame(frame.Hand{})), ErrClosed)
}

func TestDriverFor(t *testing.T) {
	_, err := DriverFor("goburrow")
	assert.NoError(t, err)
	_, err = DriverFor("bugst")
	assert.NoError(t, err)
	_, err = DriverFor("usb")
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestBuild_UnknownDriverLeavesLinkDown(t *testing.T) {
	s, err := Build("usb", "/dev/ttyACM0", Options{})
	require.ErrorIs(t, err, ErrUnknownDriver)
	require.NotNil(t, s)

	assert.False(t, s.Up())
	assert.Equal(t, "/dev/ttyACM0", s.Path())
	assert.ErrorIs(t, s.WriteFrame(frame.EncodeFrame(frame.Hand{})), ErrLinkDown)
}

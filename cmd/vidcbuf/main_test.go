package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/pion/vidcbuf/pkg/buffer"
	"github.com/pion/vidcbuf/pkg/frame"
	"github.com/pion/vidcbuf/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionDecode(t *testing.T) {
	s, err := newSession(options{
		codec: "hevc", direction: "decode", width: 3840, height: 2160,
		format: "p010", vppDelay: 4, outputMinCount: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, frame.FormatHEVC, s.Format(session.InputPort).PixelFormat)
	assert.Equal(t, frame.FormatP010, s.Format(session.OutputPort).PixelFormat)
	assert.Equal(t, uint32(4), s.PipelineDelay())
	assert.NoError(t, buffer.Validate(s))
	assert.Greater(t, buffer.Size(s, buffer.Comv), uint32(0))
}

func TestNewSessionEncode(t *testing.T) {
	s, err := newSession(options{
		codec: "h264", direction: "encode", width: 1280, height: 720, format: "nv12",
	})
	require.NoError(t, err)
	assert.Equal(t, frame.FormatNV12, s.Format(session.InputPort).PixelFormat)
	assert.Equal(t, frame.FormatH264, s.Format(session.OutputPort).PixelFormat)
	assert.False(t, s.DecodeVPPDelay.Enable)
	assert.NoError(t, buffer.Validate(s))
}

func TestNewSessionErrors(t *testing.T) {
	base := options{codec: "h264", direction: "decode", width: 64, height: 64, format: "nv12"}

	bad := base
	bad.codec = "mpeg2"
	_, err := newSession(bad)
	assert.Error(t, err)

	bad = base
	bad.direction = "both"
	_, err = newSession(bad)
	assert.Error(t, err)

	bad = base
	bad.format = "h264"
	_, err = newSession(bad)
	assert.Error(t, err)

	bad = base
	bad.platform = "/nonexistent/platform.yaml"
	_, err = newSession(bad)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run(options{
		codec: "hevc", direction: "decode", width: 1920, height: 1080, format: "nv12",
	}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, fmt.Sprintf("0x%08x", frame.FormatHEVC.Fourcc()))
	assert.Contains(t, text, "comv")
	assert.Contains(t, text, "persist")
	assert.NotContains(t, text, "dpb")
}

func TestRunRejectsOversizedFrame(t *testing.T) {
	var out bytes.Buffer
	err := run(options{
		codec: "h264", direction: "encode", width: 16384, height: 16384, format: "nv12",
	}, &out)
	assert.ErrorIs(t, err, buffer.ErrFrameTooLarge)
}

package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
	"github.com/yanqian/cosmic-rhythm/internal/domain/caldate"
)

func TestRenderBiorhythmWritesPNG(t *testing.T) {
	r := biorhythm.Range(caldate.MustParse("1990-01-01"), caldate.MustParse("2024-01-15"), 10, 20)

	var buf bytes.Buffer
	require.NoError(t, RenderBiorhythm(&buf, r))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestRenderBiorhythmRejectsEmptyRange(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, RenderBiorhythm(&buf, biorhythm.RangeReading{}))
	require.Zero(t, buf.Len())
}

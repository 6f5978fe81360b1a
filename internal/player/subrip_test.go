package player

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubRipToWebVTT(t *testing.T) {
	in := "\ufeff1\r\n00:00:01,000 --> 00:00:02,500\r\nHello\r\n\r\n2\r\n00:00:03,000 --> 00:00:04,000 X1:0\r\nWorld\r\n42\r\n"

	var out bytes.Buffer
	require.NoError(t, SubRipToWebVTT(strings.NewReader(in), &out))

	want := "WEBVTT\n\n" +
		"00:00:01.000 --> 00:00:02.500\n" +
		"Hello\n" +
		"\n" +
		"00:00:03.000 --> 00:00:04.000 X1:0\n" +
		"World\n" +
		"42\n"
	assert.Equal(t, want, out.String())
}

func TestSubRipToWebVTT_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, SubRipToWebVTT(strings.NewReader(""), &out))
	assert.Equal(t, "WEBVTT\n\n", out.String())
}

package routing

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d, err := Build(14.60, 120.98, 14.5995, 120.9842)
	require.NoError(t, err)

	assert.Equal(t, "https://www.google.com/maps/dir/14.6,120.98/14.5995,120.9842", d.DirectionsURL)

	require.True(t, strings.HasPrefix(d.QRCodeBase64, "data:image/png;base64,"))
	raw := strings.TrimPrefix(d.QRCodeBase64, "data:image/png;base64,")
	png, err := base64.StdEncoding.DecodeString(raw)
	require.NoError(t, err)
	// PNG signature.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestBuildNegativeCoordinates(t *testing.T) {
	d, err := Build(-33.87, 151.21, -33.86, 151.20)
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/maps/dir/-33.87,151.21/-33.86,151.2", d.DirectionsURL)
}

func TestBuildRejectsOutOfRange(t *testing.T) {
	cases := [][4]float64{
		{91, 0, 0, 0},
		{-91, 0, 0, 0},
		{0, 181, 0, 0},
		{0, 0, 90.1, 0},
		{0, 0, 0, -180.5},
	}
	for _, c := range cases {
		_, err := Build(c[0], c[1], c[2], c[3])
		assert.Error(t, err)
	}
}

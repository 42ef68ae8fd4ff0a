package records

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioUnitWithPresetSliceRoundTrip(t *testing.T) {
	u := AudioUnit{
		ID: "au-1", Name: "Reverb", Manufacturer: "Acme",
		Version: 3, Inputs: 2, Outputs: 2,
		HasPreset: true, PresetPath: "/presets/hall.aupreset",
		SampleRates: []uint32{44100, 48000, 96000},
	}
	buf := make([]byte, u.EncodedSize())
	n, err := u.EncodeToSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	var got AudioUnit
	m, err := got.DecodeFromSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, u, got)
}

func TestAudioUnitNoPresetSliceRoundTrip(t *testing.T) {
	u := AudioUnit{ID: "au-2", Name: "Gain", Manufacturer: "Acme", Inputs: 1, Outputs: 1}
	buf := make([]byte, u.EncodedSize())
	n, err := u.EncodeToSlice(buf)
	require.NoError(t, err)

	var got AudioUnit
	m, err := got.DecodeFromSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, u, got)
	assert.False(t, got.HasPreset)
	assert.Empty(t, got.PresetPath)
}

func TestAudioUnitRegistryRoundTrip(t *testing.T) {
	reg := AudioUnitRegistry{
		HostName: "TestHost",
		Units: []AudioUnit{
			{ID: "a", Name: "A", Manufacturer: "M1", Inputs: 2, Outputs: 2, SampleRates: []uint32{44100}},
			{ID: "b", Name: "B", Manufacturer: "M2", HasPreset: true, PresetPath: "/p", SampleRates: []uint32{48000, 96000}},
		},
	}
	buf := make([]byte, reg.EncodedSize())
	n, err := reg.EncodeToSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	var got AudioUnitRegistry
	m, err := got.DecodeFromSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, reg, got)
}

func TestAudioUnitRegistryEmptyRoundTrip(t *testing.T) {
	reg := DefaultAudioUnitRegistry()
	reg.HostName = "Empty"
	buf := make([]byte, reg.EncodedSize())
	n, err := reg.EncodeToSlice(buf)
	require.NoError(t, err)

	var got AudioUnitRegistry
	m, err := got.DecodeFromSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, reg, got)
	assert.Empty(t, got.Units)
}

func TestAudioUnitRegistryStreamRoundTrip(t *testing.T) {
	reg := AudioUnitRegistry{
		HostName: "StreamHost",
		Units: []AudioUnit{
			{ID: "s1", Name: "Synth", Manufacturer: "M", Version: 2, Inputs: 0, Outputs: 2,
				HasPreset: true, PresetPath: "/init.preset", SampleRates: []uint32{44100, 88200}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, reg.Encode(&buf))

	var got AudioUnitRegistry
	require.NoError(t, got.Decode(&buf))
	assert.Equal(t, reg, got)
}

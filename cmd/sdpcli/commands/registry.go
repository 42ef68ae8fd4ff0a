package commands

import (
	"fmt"

	"github.com/marmos91/sdp/pkg/record"
	"github.com/marmos91/sdp/pkg/records"
)

// canonical returns the named record's canonical instance: one
// representative value per schema, matching the value the testdata
// golden fixtures were generated from. Every entry here must round-trip
// byte-for-byte through its testdata golden fixture.
func canonical(name string) (record.Record, error) {
	switch name {
	case "primitives":
		return &records.Primitives{
			U8: 7, U16: 1000, U32: 100000, U64: 10_000_000_000,
			I8: -7, I16: -1000, I32: -100000, I64: -10_000_000_000,
			F32: 3.5, F64: 2.718281828, B: true, Str: "Hi",
		}, nil
	case "arrays":
		return &records.Arrays{}, nil
	case "optionals":
		return &records.Optionals{HasName: true, Name: "optional-name"}, nil
	case "nested":
		return &records.Line{
			Label:  "segment",
			Origin: records.Point{X: 0, Y: 0},
			Segment: []records.Point{
				{X: 1, Y: 1},
				{X: 2, Y: 4},
				{X: 3, Y: 9},
			},
		}, nil
	case "audiounit_registry":
		return &records.AudioUnitRegistry{
			HostName: "sdpcli-harness",
			Units: []records.AudioUnit{
				{
					ID: "com.example.reverb", Name: "Hall Reverb",
					Manufacturer: "Example Audio", Version: 3,
					Inputs: 2, Outputs: 2,
					HasPreset: true, PresetPath: "/presets/hall.aupreset",
					SampleRates: []uint32{44100, 48000, 96000},
				},
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown record %q", name)
	}
}

var recordNames = []string{"primitives", "arrays", "optionals", "nested", "audiounit_registry"}

// recordTags assigns each stand-in record a message-mode type tag. The
// golden fixtures in testdata are bare records and carry no tag; replay
// mixes reconstructed from internal/dispatchaudit events are keyed by this
// tag.
var recordTags = map[string]uint32{
	"primitives":         1,
	"arrays":             2,
	"optionals":          3,
	"nested":             4,
	"audiounit_registry": 5,
}

// recordForTag reverses recordTags, for turning an audited TypeTag back into
// a record name to replay.
func recordForTag(tag uint32) (string, bool) {
	for name, t := range recordTags {
		if t == tag {
			return name, true
		}
	}
	return "", false
}

package records

import (
	"io"

	"github.com/marmos91/sdp/pkg/record"
	"github.com/marmos91/sdp/pkg/stream"
	"github.com/marmos91/sdp/pkg/wire"
)

// AudioUnit is one entry in an AudioUnitRegistry: an identified plugin with
// an optional preset path and a list of sample rates it supports. It
// exercises a nested optional inside an array-of-records element.
type AudioUnit struct {
	ID           string
	Name         string
	Manufacturer string
	Version      uint32
	Inputs       uint16
	Outputs      uint16

	HasPreset  bool
	PresetPath string

	SampleRates []uint32
}

// EncodedSize returns the exact byte count EncodeToSlice will write.
func (u AudioUnit) EncodedSize() int {
	n := 4 + len(u.ID)
	n += 4 + len(u.Name)
	n += 4 + len(u.Manufacturer)
	n += 4 + 2 + 2
	n += 1
	if u.HasPreset {
		n += 4 + len(u.PresetPath)
	}
	n += 4 + 4*len(u.SampleRates)
	return n
}

// EncodeToSlice writes the record starting at offset 0 of buf.
func (u AudioUnit) EncodeToSlice(buf []byte) (int, error) {
	off := 0
	n, err := wire.EncodeString(buf, off, u.ID)
	if err != nil {
		return 0, err
	}
	off += n

	if n, err = wire.EncodeString(buf, off, u.Name); err != nil {
		return 0, err
	}
	off += n

	if n, err = wire.EncodeString(buf, off, u.Manufacturer); err != nil {
		return 0, err
	}
	off += n

	if n, err = wire.EncodeU32(buf, off, u.Version); err != nil {
		return 0, err
	}
	off += n

	if n, err = wire.EncodeU16(buf, off, u.Inputs); err != nil {
		return 0, err
	}
	off += n

	if n, err = wire.EncodeU16(buf, off, u.Outputs); err != nil {
		return 0, err
	}
	off += n

	if n, err = record.EncodeOptional(buf, off, u.HasPreset, func(buf []byte, offset int) (int, error) {
		return wire.EncodeString(buf, offset, u.PresetPath)
	}); err != nil {
		return 0, err
	}
	off += n

	if n, err = wire.EncodeU32Array(buf, off, u.SampleRates); err != nil {
		return 0, err
	}
	off += n

	return off, nil
}

// DecodeFromSlice reads the record starting at offset 0 of buf.
func (u *AudioUnit) DecodeFromSlice(buf []byte) (int, error) {
	off := 0
	id, n, err := wire.DecodeString(buf, off)
	if err != nil {
		return 0, err
	}
	u.ID = id
	off += n

	name, n, err := wire.DecodeString(buf, off)
	if err != nil {
		return 0, err
	}
	u.Name = name
	off += n

	manufacturer, n, err := wire.DecodeString(buf, off)
	if err != nil {
		return 0, err
	}
	u.Manufacturer = manufacturer
	off += n

	version, n, err := wire.DecodeU32(buf, off)
	if err != nil {
		return 0, err
	}
	u.Version = version
	off += n

	inputs, n, err := wire.DecodeU16(buf, off)
	if err != nil {
		return 0, err
	}
	u.Inputs = inputs
	off += n

	outputs, n, err := wire.DecodeU16(buf, off)
	if err != nil {
		return 0, err
	}
	u.Outputs = outputs
	off += n

	present, n, err := record.DecodeOptional(buf, off, func(buf []byte, offset int) (int, error) {
		s, n, err := wire.DecodeString(buf, offset)
		u.PresetPath = s
		return n, err
	})
	if err != nil {
		return 0, err
	}
	u.HasPreset = present
	off += n

	rates, n, err := wire.DecodeU32Array(buf, off)
	if err != nil {
		return 0, err
	}
	u.SampleRates = rates
	off += n

	return off, nil
}

// Encode writes the record to w using the streaming codec.
func (u AudioUnit) Encode(w io.Writer) error {
	sw := stream.NewWriter(w)
	if err := sw.WriteString(u.ID); err != nil {
		return err
	}
	if err := sw.WriteString(u.Name); err != nil {
		return err
	}
	if err := sw.WriteString(u.Manufacturer); err != nil {
		return err
	}
	if err := sw.WriteU32(u.Version); err != nil {
		return err
	}
	if err := sw.WriteU16(u.Inputs); err != nil {
		return err
	}
	if err := sw.WriteU16(u.Outputs); err != nil {
		return err
	}
	if err := record.WriteOptional(sw, u.HasPreset, func(sw *stream.Writer) error {
		return sw.WriteString(u.PresetPath)
	}); err != nil {
		return err
	}
	return sw.WriteU32Array(u.SampleRates)
}

// Decode reads the record from r using the streaming codec.
func (u *AudioUnit) Decode(r io.Reader) error {
	sr := stream.NewReader(r)
	id, err := sr.ReadString()
	if err != nil {
		return err
	}
	u.ID = id

	name, err := sr.ReadString()
	if err != nil {
		return err
	}
	u.Name = name

	manufacturer, err := sr.ReadString()
	if err != nil {
		return err
	}
	u.Manufacturer = manufacturer

	if u.Version, err = sr.ReadU32(); err != nil {
		return err
	}
	if u.Inputs, err = sr.ReadU16(); err != nil {
		return err
	}
	if u.Outputs, err = sr.ReadU16(); err != nil {
		return err
	}

	present, err := record.ReadOptional(sr, func(sr *stream.Reader) error {
		s, err := sr.ReadString()
		u.PresetPath = s
		return err
	})
	if err != nil {
		return err
	}
	u.HasPreset = present

	rates, err := sr.ReadU32Array()
	if err != nil {
		return err
	}
	u.SampleRates = rates

	return nil
}

// AudioUnitRegistry is a host's enumeration of loaded audio units: an
// array-of-records field whose elements each carry an optional, shaped
// like a realistic plugin host manifest rather than another synthetic
// scalar grab-bag.
type AudioUnitRegistry struct {
	HostName string
	Units    []AudioUnit
}

// DefaultAudioUnitRegistry returns the field-wise zero value.
func DefaultAudioUnitRegistry() AudioUnitRegistry { return AudioUnitRegistry{} }

// EncodedSize returns the exact byte count EncodeToSlice will write.
func (r AudioUnitRegistry) EncodedSize() int {
	n := 4 + len(r.HostName)
	n += 4
	for i := range r.Units {
		n += r.Units[i].EncodedSize()
	}
	return n
}

// EncodeToSlice writes the record starting at offset 0 of buf.
func (r AudioUnitRegistry) EncodeToSlice(buf []byte) (int, error) {
	off := 0
	n, err := wire.EncodeString(buf, off, r.HostName)
	if err != nil {
		return 0, err
	}
	off += n

	n, err = record.EncodeRecordArray(buf, off, r.Units)
	if err != nil {
		return 0, err
	}
	off += n

	return off, nil
}

// DecodeFromSlice reads the record starting at offset 0 of buf.
func (r *AudioUnitRegistry) DecodeFromSlice(buf []byte) (int, error) {
	off := 0
	hostName, n, err := wire.DecodeString(buf, off)
	if err != nil {
		return 0, err
	}
	r.HostName = hostName
	off += n

	units, n, err := record.DecodeRecordArray[AudioUnit](buf, off)
	if err != nil {
		return 0, err
	}
	r.Units = units
	off += n

	return off, nil
}

// Encode writes the record to w using the streaming codec.
func (r AudioUnitRegistry) Encode(w io.Writer) error {
	sw := stream.NewWriter(w)
	if err := sw.WriteString(r.HostName); err != nil {
		return err
	}
	return record.WriteRecordArray(w, r.Units)
}

// Decode reads the record from r using the streaming codec.
func (r *AudioUnitRegistry) Decode(rd io.Reader) error {
	sr := stream.NewReader(rd)
	hostName, err := sr.ReadString()
	if err != nil {
		return err
	}
	r.HostName = hostName

	units, err := record.ReadRecordArray[AudioUnit](rd)
	if err != nil {
		return err
	}
	r.Units = units
	return nil
}

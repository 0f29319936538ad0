// Package isl94202 provides the register map and field codec for the
// Renesas/Intersil ISL94202 3-to-8 cell battery-management analog front end.
//
// Design notes (datasheet references):
// • Configuration words 0x00..0x4A, telemetry words 0x8A..0xAA, 16-bit,
//   data-low then data-high.
// • Default 7-bit address = 0b0101000.
// • Threshold codes (OCD/OCC/SCD) map to sense voltages via fixed tables.
// • Delay words carry a count plus a µs/ms/s/min unit selector.
// • ADC telemetry is returned as raw 12-bit counts; scaling is left to callers.
//
// The codec (Extract/Insert, tables, delays, Image) is pure and safe for
// concurrent use. Device is a thin word accessor over drivers.I2C; it performs
// no EEPROM-enable sequencing or write timing, and is not safe for concurrent
// use.
package isl94202

import (
	"time"

	"tinygo.org/x/drivers"
)

type Config struct {
	Address uint16 // defaults to AddressDefault
}

type Device struct {
	i2c  drivers.I2C
	addr uint16

	// Fixed buffers to avoid per-call heap allocations.
	w [3]byte
	r [2]byte
}

func New(i2c drivers.I2C, cfg Config) *Device {
	addr := cfg.Address
	if addr == 0 {
		addr = AddressDefault
	}
	return &Device{i2c: i2c, addr: addr}
}

func (d *Device) Address() uint16 { return d.addr }

// ---------------- Field access ----------------

// ReadField reads the word holding f and extracts it.
func (d *Device) ReadField(f Field) (uint16, error) {
	w, err := d.ReadWord(f.Addr)
	if err != nil {
		return 0, err
	}
	return Extract(w, f), nil
}

// WriteField performs a read-modify-write of the word holding f.
// The value is range-checked before the bus is touched.
func (d *Device) WriteField(f Field, v uint16) error {
	if v > f.Max() {
		return outOfRange(f, "value wider than field")
	}
	return d.modifyWord(f.Addr, func(w uint16) (uint16, error) {
		return Insert(w, f, v)
	})
}

// SetFlag sets or clears a single feature-control bit.
func (d *Device) SetFlag(f Field, on bool) error {
	if f.Kind != KindFlag {
		return invalidField(f, "not a flag")
	}
	var v uint16
	if on {
		v = 1
	}
	return d.WriteField(f, v)
}

// ThresholdMilliV reads a threshold code field and returns its sense-voltage
// threshold.
func (d *Device) ThresholdMilliV(f Field) (uint16, error) {
	if _, ok := ThresholdFor(f); !ok {
		return 0, invalidField(f, "not a threshold code field")
	}
	w, err := d.ReadWord(f.Addr)
	if err != nil {
		return 0, err
	}
	return LookupThreshold(w, f)
}

// SetThresholdMilliV programs the smallest threshold at or above mV.
func (d *Device) SetThresholdMilliV(f Field, mV uint16) error {
	if _, ok := ThresholdFor(f); !ok {
		return invalidField(f, "not a threshold code field")
	}
	return d.modifyWord(f.Addr, func(w uint16) (uint16, error) {
		return EncodeThreshold(w, f, mV)
	})
}

// Delay reads a delay field.
func (d *Device) Delay(f Field) (time.Duration, error) {
	if _, _, err := delayParts(f); err != nil {
		return 0, err
	}
	w, err := d.ReadWord(f.Addr)
	if err != nil {
		return 0, err
	}
	return DecodeDelay(w, f)
}

// SetDelay programs a delay field.
func (d *Device) SetDelay(f Field, v time.Duration) error {
	if _, _, err := delayParts(f); err != nil {
		return err
	}
	return d.modifyWord(f.Addr, func(w uint16) (uint16, error) {
		return EncodeDelay(w, f, v)
	})
}

// ---------------- Whole-map access ----------------

// ReadImage fills img with the current configuration words.
func (d *Device) ReadImage(img *Image) error {
	for i := range img.words {
		w, err := d.ReadWord(uint8(ConfigFirst + 2*i))
		if err != nil {
			return err
		}
		img.words[i] = w
	}
	return nil
}

// WriteImage writes every configuration word of img.
func (d *Device) WriteImage(img *Image) error {
	for i, w := range img.words {
		if err := d.WriteWord(uint8(ConfigFirst+2*i), w); err != nil {
			return err
		}
	}
	return nil
}

// Telemetry holds raw 12-bit ADC counts from the RAM telemetry words.
type Telemetry struct {
	CellMin, CellMax uint16
	ISNS             uint16
	Cells            [8]uint16
	IT, XT1, XT2     uint16
	VBatt, VRGO, ADC uint16
}

// ReadTelemetry reads all telemetry words. It stops at the first bus error.
func (d *Device) ReadTelemetry() (Telemetry, error) {
	var t Telemetry
	var raw [len(TelemetryRegs)]uint16
	for i, reg := range TelemetryRegs {
		w, err := d.ReadWord(reg)
		if err != nil {
			return t, err
		}
		raw[i] = w & adcMask
	}
	t.CellMin, t.CellMax, t.ISNS = raw[0], raw[1], raw[2]
	copy(t.Cells[:], raw[3:11])
	t.IT, t.XT1, t.XT2 = raw[11], raw[12], raw[13]
	t.VBatt, t.VRGO, t.ADC = raw[14], raw[15], raw[16]
	return t, nil
}

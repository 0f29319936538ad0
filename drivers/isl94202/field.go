package isl94202

import (
	"isl94202-go/x/conv"
	"isl94202-go/x/mathx"
)

// Kind tells callers how a field's value is meant to be interpreted.
type Kind uint8

const (
	// KindValue is a plain unsigned quantity (ADC counts, pulse widths,
	// cell configuration bits).
	KindValue Kind = iota
	// KindDelay carries a count in the low bits and a DelayUnit in the top
	// ScaleBits of the field.
	KindDelay
	// KindCode is a 3-bit index into a ThresholdTable.
	KindCode
	// KindFlag is a single feature-control bit.
	KindFlag
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindDelay:
		return "delay"
	case KindCode:
		return "code"
	case KindFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Field identifies one sub-field of a 16-bit register word.
// Mask is given post-shift, i.e. already positioned within the word.
type Field struct {
	Name  string
	Desc  string
	Addr  uint8
	Shift uint8
	Mask  uint16
	Kind  Kind
	// ScaleBits is the width of the unit selector at the top of a delay field.
	ScaleBits uint8
}

// Width returns the number of bits the field occupies.
func (f Field) Width() int { return mathx.Ones(f.Mask) }

// Max returns the largest value the field can hold.
func (f Field) Max() uint16 { return f.Mask >> f.Shift }

// Hi returns the index of the field's most significant bit.
func (f Field) Hi() int { return int(f.Shift) + f.Width() - 1 }

// String renders the field as NAME@0xAA[hi:lo].
func (f Field) String() string {
	var a [2]byte
	var hi, lo [3]byte
	s := f.Name + "@0x" + string(conv.U8Hex(a[:], f.Addr)) + "["
	s += string(conv.Utoa(hi[:], uint64(f.Hi())))
	if f.Width() > 1 {
		s += ":" + string(conv.Utoa(lo[:], uint64(f.Shift)))
	}
	return s + "]"
}

// Extract returns the value of f held in raw. Any raw value is valid.
func Extract(raw uint16, f Field) uint16 {
	return (raw >> f.Shift) & (f.Mask >> f.Shift)
}

// Insert returns raw with f's bits replaced by v. Bits outside the field are
// preserved. Values wider than the field are rejected with ErrOutOfRange.
func Insert(raw uint16, f Field, v uint16) (uint16, error) {
	if !mathx.FitsIn(v, f.Width()) {
		return raw, outOfRange(f, "value wider than field")
	}
	return InsertTruncate(raw, f, v), nil
}

// InsertTruncate is Insert without the range check: bits of v that do not
// fit the field are dropped.
func InsertTruncate(raw uint16, f Field, v uint16) uint16 {
	return (raw &^ f.Mask) | ((v << f.Shift) & f.Mask)
}

// Fields returns a copy of the full configuration field table, ordered by
// address then bit position.
func Fields() []Field {
	out := make([]Field, len(fieldTable))
	copy(out, fieldTable)
	return out
}

// FieldByName looks a field up by its datasheet mnemonic (e.g. "OCD").
func FieldByName(name string) (Field, bool) {
	for _, f := range fieldTable {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldsAt returns the fields that live in the word at addr.
func FieldsAt(addr uint8) []Field {
	var out []Field
	for _, f := range fieldTable {
		if f.Addr == addr {
			out = append(out, f)
		}
	}
	return out
}

// Check validates a single field definition. Errors wrap ErrInvalidField.
func (f Field) Check() error {
	if f.Mask == 0 {
		return invalidField(f, "empty mask")
	}
	if f.Shift > 15 {
		return invalidField(f, "shift beyond register width")
	}
	if !mathx.Contiguous(f.Mask) {
		return invalidField(f, "mask not contiguous")
	}
	if mathx.LowBit(f.Mask) != int(f.Shift) {
		return invalidField(f, "mask does not start at shift")
	}
	if f.Addr&1 != 0 {
		return invalidField(f, "address not word aligned")
	}
	switch f.Kind {
	case KindFlag:
		if f.Width() != 1 {
			return invalidField(f, "flag wider than one bit")
		}
	case KindCode:
		if f.Width() != 3 {
			return invalidField(f, "threshold code is not 3 bits")
		}
	case KindDelay:
		if f.ScaleBits == 0 || int(f.ScaleBits) >= f.Width() {
			return invalidField(f, "bad delay scale width")
		}
	}
	if f.Kind != KindDelay && f.ScaleBits != 0 {
		return invalidField(f, "scale bits on non-delay field")
	}
	return nil
}

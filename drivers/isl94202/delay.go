package isl94202

import "time"

// DelayUnit is the scale selector stored at the top of a delay field.
type DelayUnit uint8

const (
	DelayMicros  DelayUnit = 0
	DelayMillis  DelayUnit = 1
	DelaySeconds DelayUnit = 2
	DelayMinutes DelayUnit = 3
)

// Duration returns one tick of the unit.
func (u DelayUnit) Duration() time.Duration {
	switch u {
	case DelayMicros:
		return time.Microsecond
	case DelayMillis:
		return time.Millisecond
	case DelaySeconds:
		return time.Second
	case DelayMinutes:
		return time.Minute
	default:
		return 0
	}
}

func (u DelayUnit) String() string {
	switch u {
	case DelayMicros:
		return "us"
	case DelayMillis:
		return "ms"
	case DelaySeconds:
		return "s"
	case DelayMinutes:
		return "min"
	default:
		return "?"
	}
}

func delayParts(f Field) (countBits int, maxUnit DelayUnit, err error) {
	if f.Kind != KindDelay || f.ScaleBits == 0 || int(f.ScaleBits) >= f.Width() {
		return 0, 0, invalidField(f, "not a delay field")
	}
	return f.Width() - int(f.ScaleBits), DelayUnit(1<<f.ScaleBits - 1), nil
}

// SplitDelay returns the raw count and unit held by delay field f.
func SplitDelay(raw uint16, f Field) (uint16, DelayUnit, error) {
	cb, _, err := delayParts(f)
	if err != nil {
		return 0, 0, err
	}
	v := Extract(raw, f)
	return v & (1<<cb - 1), DelayUnit(v >> cb), nil
}

// DecodeDelay returns the duration held by delay field f.
func DecodeDelay(raw uint16, f Field) (time.Duration, error) {
	n, u, err := SplitDelay(raw, f)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * u.Duration(), nil
}

// EncodeDelay writes d into delay field f using the finest unit that
// represents it exactly. ErrOutOfRange when no unit does.
func EncodeDelay(raw uint16, f Field, d time.Duration) (uint16, error) {
	cb, maxUnit, err := delayParts(f)
	if err != nil {
		return raw, err
	}
	if d < 0 {
		return raw, outOfRange(f, "negative delay")
	}
	limit := time.Duration(1<<cb - 1)
	for u := DelayMicros; u <= maxUnit; u++ {
		tick := u.Duration()
		if d%tick != 0 || d/tick > limit {
			continue
		}
		v := uint16(d/tick) | uint16(u)<<cb
		return Insert(raw, f, v)
	}
	return raw, outOfRange(f, "delay not representable")
}

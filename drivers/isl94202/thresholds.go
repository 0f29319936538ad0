package isl94202

// ThresholdTable maps a 3-bit threshold code onto a sense-voltage threshold
// in millivolts. Entries are strictly increasing.
type ThresholdTable [8]uint16

// Sense-resistor voltage thresholds (mV). Handed out by value only.
var (
	ocdThresholds = ThresholdTable{4, 8, 16, 24, 32, 48, 64, 96}
	occThresholds = ThresholdTable{1, 2, 4, 6, 8, 12, 16, 24}
	scdThresholds = ThresholdTable{16, 24, 32, 48, 64, 96, 128, 256}
)

// OCDThresholds returns a copy of the discharge overcurrent table.
func OCDThresholds() ThresholdTable { return ocdThresholds }

// OCCThresholds returns a copy of the charge overcurrent table.
func OCCThresholds() ThresholdTable { return occThresholds }

// SCDThresholds returns a copy of the discharge short-circuit table.
func SCDThresholds() ThresholdTable { return scdThresholds }

// Lookup returns the threshold for code; codes above 7 yield ErrOutOfRange.
func (t ThresholdTable) Lookup(code uint16) (uint16, error) {
	if code >= uint16(len(t)) {
		return 0, &FieldError{Reason: "threshold code above 7", Err: ErrOutOfRange}
	}
	return t[code], nil
}

// CodeFor returns the smallest code whose threshold is at least mV.
// Requests above the largest entry yield ErrOutOfRange.
func (t ThresholdTable) CodeFor(mV uint16) (uint16, error) {
	for i, v := range t {
		if v >= mV {
			return uint16(i), nil
		}
	}
	return 0, &FieldError{Reason: "threshold above table maximum", Err: ErrOutOfRange}
}

// ThresholdFor returns a copy of the table that backs a threshold code field.
// Code fields are matched by kind and register address.
func ThresholdFor(f Field) (ThresholdTable, bool) {
	if f.Kind != KindCode {
		return ThresholdTable{}, false
	}
	switch f.Addr {
	case RegOCDTOCD:
		return ocdThresholds, true
	case RegOCCTOCC:
		return occThresholds, true
	case RegSCDTSCD:
		return scdThresholds, true
	default:
		return ThresholdTable{}, false
	}
}

// LookupThreshold decodes the code held by f in raw and returns its
// threshold in millivolts.
func LookupThreshold(raw uint16, f Field) (uint16, error) {
	t, ok := ThresholdFor(f)
	if !ok {
		return 0, invalidField(f, "not a threshold code field")
	}
	return t.Lookup(Extract(raw, f))
}

// EncodeThreshold writes the code for the smallest threshold >= mV into f.
func EncodeThreshold(raw uint16, f Field, mV uint16) (uint16, error) {
	t, ok := ThresholdFor(f)
	if !ok {
		return raw, invalidField(f, "not a threshold code field")
	}
	code, err := t.CodeFor(mV)
	if err != nil {
		return raw, err
	}
	return Insert(raw, f, code)
}

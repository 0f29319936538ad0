package isl94202

// Image is an in-memory copy of the configuration words 0x00..0x4A.
// The zero value is an all-zero image.
type Image struct {
	words [NumConfigWords]uint16
}

func imageIndex(addr uint8) (int, bool) {
	if addr&1 != 0 || addr > ConfigLast {
		return 0, false
	}
	return int(addr-ConfigFirst) / 2, true
}

// Word returns the raw word at addr.
func (m *Image) Word(addr uint8) (uint16, error) {
	i, ok := imageIndex(addr)
	if !ok {
		return 0, &FieldError{Reason: "not a configuration word", Err: ErrOutOfRange}
	}
	return m.words[i], nil
}

// SetWord replaces the raw word at addr.
func (m *Image) SetWord(addr uint8, v uint16) error {
	i, ok := imageIndex(addr)
	if !ok {
		return &FieldError{Reason: "not a configuration word", Err: ErrOutOfRange}
	}
	m.words[i] = v
	return nil
}

// Get extracts f from the image.
func (m *Image) Get(f Field) (uint16, error) {
	w, err := m.Word(f.Addr)
	if err != nil {
		return 0, outOfRange(f, "not a configuration word")
	}
	return Extract(w, f), nil
}

// Set inserts v into f, leaving neighbouring fields untouched.
func (m *Image) Set(f Field, v uint16) error {
	i, ok := imageIndex(f.Addr)
	if !ok {
		return outOfRange(f, "not a configuration word")
	}
	w, err := Insert(m.words[i], f, v)
	if err != nil {
		return err
	}
	m.words[i] = w
	return nil
}

// Words returns a copy of the raw words in address order.
func (m *Image) Words() [NumConfigWords]uint16 { return m.words }

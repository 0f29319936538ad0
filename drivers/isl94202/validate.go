package isl94202

// ValidateFields checks every definition with Field.Check and rejects fields
// that share an address and claim overlapping bits. Errors wrap
// ErrInvalidField.
func ValidateFields(fields []Field) error {
	for i, f := range fields {
		if err := f.Check(); err != nil {
			return err
		}
		for _, g := range fields[:i] {
			if g.Addr != f.Addr {
				continue
			}
			if g.Name == f.Name {
				return invalidField(f, "duplicate name")
			}
			if g.Mask&f.Mask != 0 {
				return invalidField(f, "overlaps "+g.Name)
			}
		}
	}
	return nil
}

// Validate checks the built-in field table.
func Validate() error { return ValidateFields(fieldTable) }

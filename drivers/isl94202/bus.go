package isl94202

// I2C 16-bit word operations (Little-endian: LOW then HIGH).

// ReadWord reads the 16-bit word at reg.
func (d *Device) ReadWord(reg uint8) (uint16, error) {
	d.w[0] = reg
	if err := d.i2c.Tx(d.addr, d.w[:1], d.r[:2]); err != nil {
		return 0, err
	}
	return uint16(d.r[0]) | uint16(d.r[1])<<8, nil
}

// WriteWord writes the 16-bit word at reg.
func (d *Device) WriteWord(reg uint8, val uint16) error {
	d.w[0] = reg
	d.w[1] = byte(val)      // low
	d.w[2] = byte(val >> 8) // high
	return d.i2c.Tx(d.addr, d.w[:3], nil)
}

// modifyWord is a private helper for the read-modify-write pattern.
func (d *Device) modifyWord(reg uint8, fn func(uint16) (uint16, error)) error {
	cur, err := d.ReadWord(reg)
	if err != nil {
		return err
	}
	next, err := fn(cur)
	if err != nil {
		return err
	}
	if next == cur {
		return nil
	}
	return d.WriteWord(reg, next)
}

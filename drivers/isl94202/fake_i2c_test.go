package isl94202

import (
	"errors"
	"sync"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

var errBus = errors.New("bus fault")

// Byte-addressed register file behaving like the ISL94202 word interface.
type fakeI2C struct {
	mu     sync.Mutex
	mem    [256]byte
	addr   uint16
	reads  int
	writes int
	failAt int // fail the Nth transaction (1-based); 0 disables
	n      int
}

func newFakeI2C() *fakeI2C { return &fakeI2C{addr: AddressDefault} }

func (f *fakeI2C) word(reg uint8) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint16(f.mem[reg]) | uint16(f.mem[reg+1])<<8
}

func (f *fakeI2C) setWord(reg uint8, v uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mem[reg] = byte(v)
	f.mem[reg+1] = byte(v >> 8)
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.n++
	if f.failAt != 0 && f.n == f.failAt {
		return errBus
	}
	if addr != f.addr {
		return errBus
	}
	switch {
	case len(w) == 1 && len(r) == 2:
		f.reads++
		r[0] = f.mem[w[0]]
		r[1] = f.mem[w[0]+1]
		return nil
	case len(w) == 3 && len(r) == 0:
		f.writes++
		f.mem[w[0]] = w[1]
		f.mem[w[0]+1] = w[2]
		return nil
	}
	return errBus
}

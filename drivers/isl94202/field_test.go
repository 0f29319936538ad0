package isl94202

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOVLO(t *testing.T) {
	assert.Equal(t, uint8(0), OVLO.Shift)
	assert.Equal(t, uint16(0x0FFF), OVLO.Mask)
	assert.Equal(t, uint16(0xABC), Extract(0x0ABC, OVLO))
}

func TestExtractUpperFields(t *testing.T) {
	// OCD code 5 with a 0x123 time-out.
	raw := uint16(5<<12 | 0x123)
	assert.Equal(t, uint16(5), Extract(raw, OCD))
	assert.Equal(t, uint16(0x123), Extract(raw, OCDT))

	assert.Equal(t, uint16(0x1F), Extract(0xF800, WDT))
	assert.Equal(t, uint16(0), Extract(0xF800, SLT))
	assert.Equal(t, uint16(0xAB), Extract(0xAB12, CELL))
	assert.Equal(t, uint16(0x12), Extract(0xAB12, MOD))
}

func TestInsertPreservesNeighbours(t *testing.T) {
	raw, err := Insert(0x0FFF, CPW, 0xA)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xAFFF), raw)

	raw, err = Insert(raw, OVL, 0x123)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xA123), raw)
}

func TestInsertRejectsWideValue(t *testing.T) {
	raw, err := Insert(0x1234, OCD, 8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, uint16(0x1234), raw, "raw must be returned unchanged")

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "OCD", fe.Field)
}

func TestInsertTruncate(t *testing.T) {
	// 0xF into a 3-bit field keeps 0x7; bit 15 is left alone.
	assert.Equal(t, uint16(0xF000), InsertTruncate(0x8000, OCD, 0xF))
	assert.Equal(t, uint16(0x0001), InsertTruncate(0x0000, CFPSD, 0x3))
}

func TestInsertExtractRoundTripAllFields(t *testing.T) {
	for _, f := range Fields() {
		for r := 0; r <= 0xFFFF; r++ {
			raw := uint16(r)
			got, err := Insert(raw, f, Extract(raw, f))
			if err != nil {
				t.Fatalf("%s raw=0x%04X: %v", f.Name, raw, err)
			}
			if got != raw {
				t.Fatalf("%s raw=0x%04X: round trip gave 0x%04X", f.Name, raw, got)
			}
		}
	}
}

func TestInsertThenExtract(t *testing.T) {
	for _, f := range Fields() {
		for _, v := range []uint16{0, 1, f.Max() / 2, f.Max()} {
			raw, err := Insert(0x5A5A, f, v)
			require.NoError(t, err, f.Name)
			assert.Equalf(t, v, Extract(raw, f), "%s", f.Name)
			assert.Equalf(t, uint16(0x5A5A)&^f.Mask, raw&^f.Mask, "%s touched bits outside its mask", f.Name)
		}
	}
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "OCD@0x16[14:12]", OCD.String())
	assert.Equal(t, "CBEOC@0x4A[15]", CBEOC.String())
	assert.Equal(t, "OVL@0x00[11:0]", OVL.String())
}

func TestFieldLookup(t *testing.T) {
	f, ok := FieldByName("SCD")
	require.True(t, ok)
	assert.Equal(t, SCD, f)

	_, ok = FieldByName("NOPE")
	assert.False(t, ok)

	at := FieldsAt(RegSLTWDT)
	require.Len(t, at, 2)
	assert.Equal(t, SLT, at[0])
	assert.Equal(t, WDT, at[1])

	assert.Len(t, FieldsAt(RegFC), 12)
}

func TestFieldsReturnsCopy(t *testing.T) {
	fs := Fields()
	fs[0].Mask = 0
	assert.Equal(t, uint16(0x0FFF), Fields()[0].Mask)
}

func TestFieldByNameReturnsIndependentCopy(t *testing.T) {
	f, ok := FieldByName("OCD")
	require.True(t, ok)
	f.Mask = 0x0FFF

	again, ok := FieldByName("OCD")
	require.True(t, ok)
	assert.Equal(t, uint16(0x7000), again.Mask)

	mV, err := LookupThreshold(3<<12, again)
	require.NoError(t, err)
	assert.Equal(t, uint16(24), mV)
}

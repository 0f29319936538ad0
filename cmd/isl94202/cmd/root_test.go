package cmd

import (
	"bytes"
	"testing"

	"isl94202-go/errcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDecodeWord(t *testing.T) {
	out, err := run(t, "decode", "--addr", "0x16", "--raw", "0x34A0")
	require.NoError(t, err)
	assert.Contains(t, out, "0x16 = 0x34A0")
	assert.Contains(t, out, "OCDT   = 0x4A0 (1184)  160 ms = 160ms")
	assert.Contains(t, out, "OCD    = 0x003 (3)  24 mV")
}

func TestDecodeFlags(t *testing.T) {
	out, err := run(t, "decode", "--addr", "0x4A", "--raw", "0x8001")
	require.NoError(t, err)
	assert.Contains(t, out, "CFPSD  = 0x001 (1)  on")
	assert.Contains(t, out, "XT2M   = 0x000 (0)  off")
	assert.Contains(t, out, "CBEOC  = 0x001 (1)  on")
}

func TestDecodeUnknownAddress(t *testing.T) {
	_, err := run(t, "decode", "--addr", "0x8A", "--raw", "0")
	require.Error(t, err)
	assert.Equal(t, errcode.InvalidParams, errcode.Of(err))
}

func TestEncode(t *testing.T) {
	out, err := run(t, "encode", "--field", "ocd", "--raw", "0x04A0", "--value", "3")
	require.NoError(t, err)
	assert.Equal(t, "0x34A0\n", out)

	_, err = run(t, "encode", "--field", "OCD", "--value", "8")
	assert.Equal(t, errcode.OutOfRange, errcode.Of(err))

	out, err = run(t, "encode", "--field", "OCD", "--value", "9", "--truncate")
	require.NoError(t, err)
	assert.Equal(t, "0x1000\n", out)

	_, err = run(t, "encode", "--field", "BOGUS", "--value", "1")
	assert.Equal(t, errcode.UnknownField, errcode.Of(err))
}

func TestThreshold(t *testing.T) {
	out, err := run(t, "threshold", "ocd", "--code", "3")
	require.NoError(t, err)
	assert.Equal(t, "code 3 = 24 mV\n", out)

	out, err = run(t, "threshold", "scd", "--code", "7")
	require.NoError(t, err)
	assert.Equal(t, "code 7 = 256 mV\n", out)

	out, err = run(t, "threshold", "occ", "--mv", "5")
	require.NoError(t, err)
	assert.Equal(t, "code 3 = 6 mV\n", out)

	_, err = run(t, "threshold", "ocd", "--code", "8")
	assert.Equal(t, errcode.OutOfRange, errcode.Of(err))

	_, err = run(t, "threshold", "xyz", "--code", "1")
	assert.Equal(t, errcode.InvalidParams, errcode.Of(err))
}

func TestDelay(t *testing.T) {
	out, err := run(t, "delay", "--field", "OVDT", "--raw", "0x0801")
	require.NoError(t, err)
	assert.Equal(t, "1 s = 1s\n", out)

	out, err = run(t, "delay", "--field", "OCDT", "--raw", "0x3000", "--set", "160ms")
	require.NoError(t, err)
	assert.Equal(t, "0x34A0\n", out)

	_, err = run(t, "delay", "--field", "OVL", "--raw", "0")
	assert.Equal(t, errcode.InvalidField, errcode.Of(err))
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Equal(t, "ok: 56 fields\n", out)
}

func TestFieldsYAML(t *testing.T) {
	out, err := run(t, "fields", "--yaml")
	require.NoError(t, err)

	var docs []fieldDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 56)

	byName := map[string]fieldDoc{}
	for _, d := range docs {
		byName[d.Name] = d
	}
	scd := byName["SCD"]
	assert.Equal(t, "0x1A", scd.Addr)
	assert.Equal(t, "14:12", scd.Bits)
	assert.Equal(t, "code", scd.Kind)
	assert.Equal(t, []uint16{16, 24, 32, 48, 64, 96, 128, 256}, scd.Table)

	assert.Equal(t, "15", byName["CBEOC"].Bits)
	assert.Equal(t, uint8(2), byName["SLT"].ScaleBits)
}

func TestFieldsPlain(t *testing.T) {
	out, err := run(t, "fields")
	require.NoError(t, err)
	assert.Contains(t, out, "OVLO   0x08 [ 11:0] value overvoltage lockout threshold")
}

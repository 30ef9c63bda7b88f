package endian

import (
	"encoding/binary"
	"math/bits"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	result := CheckEndianness()

	// Inspect the host directly and compare against the reported order.
	var witness uint16 = 0x0102
	witnessBytes := (*[2]byte)(unsafe.Pointer(&witness))

	switch witnessBytes[0] {
	case 0x02:
		require.Equal(t, binary.LittleEndian, result, "host stores LSB first")
	case 0x01:
		require.Equal(t, binary.BigEndian, result, "host stores MSB first")
	default:
		t.Fatalf("unexpected witness byte %#x", witnessBytes[0])
	}

	// The answer must not change between calls.
	for range 50 {
		require.Equal(t, result, CheckEndianness())
	}
}

func TestCompareNativeEndian(t *testing.T) {
	if CheckEndianness() == binary.LittleEndian {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
	}

	// Exactly one engine can match the host.
	require.NotEqual(t,
		CompareNativeEndian(GetLittleEndianEngine()),
		CompareNativeEndian(GetBigEndianEngine()))
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	// Section lengths are written LSB first.
	buf := make([]byte, 4)
	engine.PutUint32(buf, 0x0000EC51)
	require.Equal(t, []byte{0x51, 0xEC, 0x00, 0x00}, buf)
	require.Equal(t, uint32(0x0000EC51), engine.Uint32(buf))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	// Frame headers carry their payload length MSB first.
	buf := make([]byte, 4)
	engine.PutUint32(buf, 1024)
	require.Equal(t, []byte{0x00, 0x00, 0x04, 0x00}, buf)
	require.Equal(t, uint32(1024), engine.Uint32(buf))
}

func TestAppendMatchesPut(t *testing.T) {
	engines := map[string]EndianEngine{
		"little": GetLittleEndianEngine(),
		"big":    GetBigEndianEngine(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			appended := engine.AppendUint16(nil, 0x0102)
			direct := make([]byte, 2)
			engine.PutUint16(direct, 0x0102)
			require.Equal(t, direct, appended)

			appended = engine.AppendUint32(nil, 0x01020304)
			direct = make([]byte, 4)
			engine.PutUint32(direct, 0x01020304)
			require.Equal(t, direct, appended)

			appended = engine.AppendUint64(nil, 0x0102030405060708)
			direct = make([]byte, 8)
			engine.PutUint64(direct, 0x0102030405060708)
			require.Equal(t, direct, appended)
		})
	}
}

func TestAppendExtendsExistingBuffer(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := []byte{0xAA}
	buf = engine.AppendUint16(buf, 0x0102)
	buf = engine.AppendUint32(buf, 0x03040506)

	require.Equal(t, []byte{0xAA, 0x02, 0x01, 0x06, 0x05, 0x04, 0x03}, buf)
}

func TestEnginesDisagreeOnByteOrder(t *testing.T) {
	littleEngine := GetLittleEndianEngine()
	bigEngine := GetBigEndianEngine()

	var value uint64 = 0x0102030405060708
	littleBytes := make([]byte, 8)
	bigBytes := make([]byte, 8)

	littleEngine.PutUint64(littleBytes, value)
	bigEngine.PutUint64(bigBytes, value)

	require.NotEqual(t, littleBytes, bigBytes)
	require.Equal(t, value, littleEngine.Uint64(littleBytes))
	require.Equal(t, value, bigEngine.Uint64(bigBytes))

	// Each engine reads the other's layout byte-reversed.
	require.Equal(t, bits.ReverseBytes64(value), bigEngine.Uint64(littleBytes))
	require.Equal(t, bits.ReverseBytes64(value), littleEngine.Uint64(bigBytes))
}

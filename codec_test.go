package routingkit

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func roundTrip(t *testing.T, codec Encoder, v interface{}, size int) interface{} {
	t.Helper()

	byt, err := codec.Encode(v)
	if err != nil {
		t.Fatal(err)
	}

	if len(byt) != size {
		t.Errorf(`expected %d bytes, got %d`, size, len(byt))
	}

	decoded, err := codec.Decode(byt)
	if err != nil {
		t.Fatal(err)
	}

	return decoded
}

func TestCodec_SignedRoundTrip(t *testing.T) {
	codec := Int8.PathComponent().Codec
	for _, v := range []int8{0, 1, -1, math.MaxInt8, math.MinInt8} {
		if decoded := roundTrip(t, codec, v, 1); decoded.(int8) != v {
			t.Errorf(`expected [%d], got [%v]`, v, decoded)
		}
	}

	codec = Int64.PathComponent().Codec
	for _, v := range []int64{0, -1, math.MaxInt64, math.MinInt64} {
		if decoded := roundTrip(t, codec, v, 8); decoded.(int64) != v {
			t.Errorf(`expected [%d], got [%v]`, v, decoded)
		}
	}

	codec = Int16.PathComponent().Codec
	if decoded := roundTrip(t, codec, int16(-300), 2); decoded.(int16) != -300 {
		t.Errorf(`expected [-300], got [%v]`, decoded)
	}
}

func TestCodec_UnsignedRoundTrip(t *testing.T) {
	codec := Uint32.PathComponent().Codec
	for _, v := range []uint32{0, 1, math.MaxUint32} {
		if decoded := roundTrip(t, codec, v, 4); decoded.(uint32) != v {
			t.Errorf(`expected [%d], got [%v]`, v, decoded)
		}
	}

	codec = Uint64.PathComponent().Codec
	if decoded := roundTrip(t, codec, uint64(math.MaxUint64), 8); decoded.(uint64) != math.MaxUint64 {
		t.Errorf(`expected max uint64, got [%v]`, decoded)
	}
}

func TestCodec_FloatRoundTrip(t *testing.T) {
	codec := Float64.PathComponent().Codec
	for _, v := range []float64{0, 3.14, -1e300, math.Inf(1)} {
		if decoded := roundTrip(t, codec, v, 8); decoded.(float64) != v {
			t.Errorf(`expected [%v], got [%v]`, v, decoded)
		}
	}

	codec = Float32.PathComponent().Codec
	if decoded := roundTrip(t, codec, float32(3.14), 4); decoded.(float32) != float32(3.14) {
		t.Errorf(`expected [3.14], got [%v]`, decoded)
	}
}

func TestCodec_String(t *testing.T) {
	codec := String.PathComponent().Codec
	for _, v := range []string{``, `random-text`} {
		if decoded := roundTrip(t, codec, v, len(v)); decoded.(string) != v {
			t.Errorf(`expected [%s], got [%v]`, v, decoded)
		}
	}
}

func TestCodec_UUID(t *testing.T) {
	codec := UUID.PathComponent().Codec
	assertId := uuid.MustParse(`550e8400-e29b-41d4-a716-446655440000`)

	if decoded := roundTrip(t, codec, assertId, 16); decoded.(uuid.UUID) != assertId {
		t.Errorf(`expected [%s], got [%v]`, assertId, decoded)
	}

	if _, err := codec.Decode([]byte{0x01, 0x02}); err == nil {
		t.Error(`expected a short uuid buffer to fail`)
	}
}

func TestCodec_Failures(t *testing.T) {
	codec := Int32.PathComponent().Codec

	if _, err := codec.Encode(`not-an-int32`); err == nil {
		t.Error(`expected a type mismatch to fail`)
	}

	if _, err := codec.Decode([]byte{0x01}); err == nil {
		t.Error(`expected a short buffer to fail`)
	}

	if _, err := Float64.PathComponent().Codec.Decode([]byte{0x01, 0x02}); err == nil {
		t.Error(`expected a short buffer to fail`)
	}
}

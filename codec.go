package routingkit

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/tryfix/errors"
)

type Encoder interface {
	Encode(v interface{}) ([]byte, error)
	Decode([]byte) (interface{}, error)
}

type stringCodec struct{}

func (stringCodec) Encode(v interface{}) ([]byte, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errors.New(fmt.Sprintf(`value [%v] is not a string`, v))
	}

	return []byte(s), nil
}

func (stringCodec) Decode(data []byte) (interface{}, error) {
	return string(data), nil
}

// signedCodec writes exactly size big-endian bytes. Decoding relies on Go's
// truncating integer conversion to restore the sign at any width.
type signedCodec[T signedInteger] struct {
	size int
}

func (c signedCodec[T]) Encode(v interface{}) ([]byte, error) {
	n, ok := v.(T)
	if !ok {
		return nil, errors.New(fmt.Sprintf(`value [%v] is not a %T`, v, n))
	}

	buf := make([]byte, c.size)
	putUintBE(buf, uint64(n))
	return buf, nil
}

func (c signedCodec[T]) Decode(data []byte) (interface{}, error) {
	if len(data) != c.size {
		return nil, errors.New(fmt.Sprintf(`expected %d bytes, got %d`, c.size, len(data)))
	}

	return T(getUintBE(data)), nil
}

type unsignedCodec[T unsignedInteger] struct {
	size int
}

func (c unsignedCodec[T]) Encode(v interface{}) ([]byte, error) {
	n, ok := v.(T)
	if !ok {
		return nil, errors.New(fmt.Sprintf(`value [%v] is not a %T`, v, n))
	}

	buf := make([]byte, c.size)
	putUintBE(buf, uint64(n))
	return buf, nil
}

func (c unsignedCodec[T]) Decode(data []byte) (interface{}, error) {
	if len(data) != c.size {
		return nil, errors.New(fmt.Sprintf(`expected %d bytes, got %d`, c.size, len(data)))
	}

	return T(getUintBE(data)), nil
}

type float32Codec struct{}

func (float32Codec) Encode(v interface{}) ([]byte, error) {
	f, ok := v.(float32)
	if !ok {
		return nil, errors.New(fmt.Sprintf(`value [%v] is not a float32`, v))
	}

	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, math.Float32bits(f))
	return buf, nil
}

func (float32Codec) Decode(data []byte) (interface{}, error) {
	if len(data) != 4 {
		return nil, errors.New(fmt.Sprintf(`expected 4 bytes, got %d`, len(data)))
	}

	return math.Float32frombits(binary.BigEndian.Uint32(data)), nil
}

type float64Codec struct{}

func (float64Codec) Encode(v interface{}) ([]byte, error) {
	f, ok := v.(float64)
	if !ok {
		return nil, errors.New(fmt.Sprintf(`value [%v] is not a float64`, v))
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(f))
	return buf, nil
}

func (float64Codec) Decode(data []byte) (interface{}, error) {
	if len(data) != 8 {
		return nil, errors.New(fmt.Sprintf(`expected 8 bytes, got %d`, len(data)))
	}

	return math.Float64frombits(binary.BigEndian.Uint64(data)), nil
}

type uuidCodec struct{}

func (uuidCodec) Encode(v interface{}) ([]byte, error) {
	u, ok := v.(uuid.UUID)
	if !ok {
		return nil, errors.New(fmt.Sprintf(`value [%v] is not a uuid.UUID`, v))
	}

	return append([]byte(nil), u[:]...), nil
}

func (uuidCodec) Decode(data []byte) (interface{}, error) {
	u, err := uuid.FromBytes(data)
	if err != nil {
		return nil, errors.WithPrevious(err, `uuid byte decode failed`)
	}

	return u, nil
}

func putUintBE(dst []byte, v uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

func getUintBE(src []byte) uint64 {
	var v uint64
	for _, b := range src {
		v = v<<8 | uint64(b)
	}

	return v
}

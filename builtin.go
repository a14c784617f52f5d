package routingkit

import (
	"strconv"

	"github.com/google/uuid"
)

// type sets after golang.org/x/exp/constraints, redefined locally to keep the
// module free of the extra import
type signedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type floatingPoint interface {
	~float32 | ~float64
}

var (
	String = NewType(`String`, func(raw string) (interface{}, error) {
		return raw, nil
	})

	Int   = fixedWidthSigned[int](`Int`, strconv.IntSize)
	Int8  = fixedWidthSigned[int8](`Int8`, 8)
	Int16 = fixedWidthSigned[int16](`Int16`, 16)
	Int32 = fixedWidthSigned[int32](`Int32`, 32)
	Int64 = fixedWidthSigned[int64](`Int64`, 64)

	Uint   = fixedWidthUnsigned[uint](`Uint`, strconv.IntSize)
	Uint8  = fixedWidthUnsigned[uint8](`Uint8`, 8)
	Uint16 = fixedWidthUnsigned[uint16](`Uint16`, 16)
	Uint32 = fixedWidthUnsigned[uint32](`Uint32`, 32)
	Uint64 = fixedWidthUnsigned[uint64](`Uint64`, 64)

	Float32 = binaryFloatingPoint[float32](`Float32`, float32Codec{})
	Float64 = binaryFloatingPoint[float64](`Float64`, float64Codec{})

	UUID = NewType(`UUID`, resolveUUID, TypeWithCodec(uuidCodec{}))
)

func fixedWidthSigned[T signedInteger](name string, bitSize int) Type {
	resolve := func(raw string) (interface{}, error) {
		n, err := strconv.ParseInt(raw, 10, bitSize)
		if err != nil {
			return nil, notConvertible(IdentifierFixedWidthInteger, name)
		}

		return T(n), nil
	}

	return NewType(name, resolve, TypeWithCodec(signedCodec[T]{size: bitSize / 8}))
}

func fixedWidthUnsigned[T unsignedInteger](name string, bitSize int) Type {
	resolve := func(raw string) (interface{}, error) {
		n, err := strconv.ParseUint(raw, 10, bitSize)
		if err != nil {
			return nil, notConvertible(IdentifierFixedWidthInteger, name)
		}

		return T(n), nil
	}

	return NewType(name, resolve, TypeWithCodec(unsignedCodec[T]{size: bitSize / 8}))
}

func binaryFloatingPoint[T floatingPoint](name string, codec Encoder) Type {
	resolve := func(raw string) (interface{}, error) {
		// always parses at double precision, then narrows to the target width
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, notConvertible(IdentifierBinaryFloatingPoint, name)
		}

		return T(f), nil
	}

	return NewType(name, resolve, TypeWithCodec(codec))
}

func resolveUUID(raw string) (interface{}, error) {
	// canonical 8-4-4-4-12 form only, no urn prefix or braces
	if len(raw) != 36 {
		return nil, notConvertible(IdentifierUUID, `UUID`)
	}

	u, err := uuid.Parse(raw)
	if err != nil {
		return nil, notConvertible(IdentifierUUID, `UUID`)
	}

	return u, nil
}

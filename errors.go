package routingkit

import (
	"fmt"
)

const (
	IdentifierFixedWidthInteger   = `fwi`
	IdentifierBinaryFloatingPoint = `bfp`
	IdentifierUUID                = `uuid`
)

type ConversionError struct {
	Identifier string
	Reason     string
}

func (e ConversionError) Error() string {
	return fmt.Sprintf(`%s: %s`, e.Identifier, e.Reason)
}

func notConvertible(identifier, typeName string) ConversionError {
	return ConversionError{
		Identifier: identifier,
		Reason:     fmt.Sprintf(`The parameter was not convertible to a %s`, typeName),
	}
}

type MissingParamError struct {
	Name string
}

func (m MissingParamError) Error() string {
	return fmt.Sprintf(`route parameter [%s] does not exist in request`, m.Name)
}

type InvalidHeaderError struct {
	Name string
}

func (i InvalidHeaderError) Error() string {
	return fmt.Sprintf(`invalid header value or header does not exist for http header [%s]`, i.Name)
}

type UnknownSlugError struct {
	Slug string
}

func (u UnknownSlugError) Error() string {
	return fmt.Sprintf(`routing slug [%s] is not a registered param type`, u.Slug)
}

// Package encoding provides a small structural serializer for plain value
// types: a value exposes its fields positionally, and a named prototype
// reconstructs an instance from those fields.
//
// Two wire forms are supported: JSON text (debuggable, human readable) and
// a compact msgpack form wrapped in URL-safe base64. Both round-trip plain
// data only - no cycles, no interface values inside fields.
package encoding

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors for decoding.
var (
	ErrInvalidFormat = errors.New("encoding: invalid field encoding")
	ErrFieldCount    = errors.New("encoding: wrong number of fields for prototype")
)

// Encodable is implemented by types that expose their state as an ordered
// field list. The field order is the contract: Decode feeds fields back to
// the prototype factory in the same positions.
type Encodable interface {
	Fields() []any
}

// Prototype reconstructs values of type T from positional fields.
//
// Arity, when non-zero, is checked before Make is called. Make receives the
// decoded fields; numeric fields arrive as float64 from the JSON form and
// as their original numeric type from the compact form, so factories should
// convert via type switches where it matters.
type Prototype[T any] struct {
	Name  string
	Arity int
	Make  func(fields []any) (T, error)
}

// Encode serializes v's fields as a JSON array.
func Encode(v Encodable) (string, error) {
	data, err := json.Marshal(v.Fields())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses a JSON field array and invokes the prototype's factory.
func Decode[T any](p Prototype[T], text string) (T, error) {
	var zero T

	var fields []any
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return makeFromFields(p, fields)
}

// EncodeCompact serializes v's fields as msgpack wrapped in URL-safe base64.
func EncodeCompact(v Encodable) (string, error) {
	packed, err := msgpack.Marshal(v.Fields())
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(packed), nil
}

// DecodeCompact decodes the compact form and invokes the prototype's factory.
func DecodeCompact[T any](p Prototype[T], encoded string) (T, error) {
	var zero T

	packed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	var fields []any
	if err := msgpack.Unmarshal(packed, &fields); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return makeFromFields(p, fields)
}

// makeFromFields runs the arity check and calls the factory.
func makeFromFields[T any](p Prototype[T], fields []any) (T, error) {
	var zero T
	if p.Arity > 0 && len(fields) != p.Arity {
		return zero, fmt.Errorf("%w: %s wants %d fields, got %d", ErrFieldCount, p.Name, p.Arity, len(fields))
	}
	v, err := p.Make(fields)
	if err != nil {
		return zero, fmt.Errorf("encoding: %s: %w", p.Name, err)
	}
	return v, nil
}

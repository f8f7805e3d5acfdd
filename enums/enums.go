// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides common interfaces for enums
// and utilities used by generated enum code.
package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// Enum is the interface that all enum types satisfy.
// Enum types must be convertable to strings and int64s,
// must be able to return a description of their value,
// and must be able to return all possible enum values.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string

	// Values returns all possible values this
	// enum type has.
	Values() []Enum
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy. Pointers to enum types must
// satisfy all of the methods of [Enum], and must also
// be settable from strings and int64s.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its
	// string representation, and returns an
	// error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// String returns the string representation of the given
// enum value with the given map, falling back on its
// integer value if it is not in the map.
func String[T interface {
	Enum
	comparable
}](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// Desc returns the description of the given enum value
// with the given map, falling back on its string
// representation if it has no description.
func Desc[T interface {
	Enum
	comparable
}](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// SetString sets the given enum value from its string representation
// using the given value map, trying the lowercase form of the string if
// the exact form is not found. It returns an error if neither is valid.
func SetString[T any](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type %s", s, typeName)
}

// Values returns the given enum values as a slice of [Enum] values.
func Values[T Enum](in []T) []Enum {
	res := make([]Enum, len(in))
	for i, v := range in {
		res[i] = v
	}
	return res
}

// Strings returns the string representations of the given enum values.
func Strings[T Enum](in []T) []string {
	res := make([]string, len(in))
	for i, v := range in {
		res[i] = v.String()
	}
	return res
}

// UnmarshalText sets the given enum value from the given text,
// for use in implementing [encoding.TextUnmarshaler].
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("enums.UnmarshalText: %w", err)
	}
	return nil
}

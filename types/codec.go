// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Message a value with a deterministic protobuf wire encoding.
// Every replica must produce the same bytes for the same value, so
// implementations write fields in number order and sort map entries.
type Message interface {
	Marshal() []byte
	Unmarshal(data []byte) error
}

// Encode encode a message
func Encode(m Message) []byte {
	return m.Marshal()
}

// Decode decode data into m
func Decode(data []byte, m Message) error {
	return m.Unmarshal(data)
}

// FieldFunc visits one decoded field. v holds the payload of a bytes field,
// x the value of a varint field.
type FieldFunc func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error

// DecodeFields walk every field of a wire message. Fixed width and group
// fields are skipped, fn only sees their number and type.
func DecodeFields(b []byte, fn FieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(ErrDecode, protowire.ParseError(n).Error())
		}
		b = b[n:]
		switch typ {
		case protowire.VarintType:
			x, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return errors.Wrap(ErrDecode, protowire.ParseError(m).Error())
			}
			b = b[m:]
			if err := fn(num, typ, nil, x); err != nil {
				return err
			}
		case protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return errors.Wrap(ErrDecode, protowire.ParseError(m).Error())
			}
			b = b[m:]
			if err := fn(num, typ, v, 0); err != nil {
				return err
			}
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return errors.Wrap(ErrDecode, protowire.ParseError(m).Error())
			}
			b = b[m:]
			if err := fn(num, typ, nil, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// AppendString append a string field
func AppendString(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// AppendBytes append a bytes field
func AppendBytes(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// AppendVarint append a varint field
func AppendVarint(b []byte, num protowire.Number, x uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, x)
}

// AppendBool append a bool field
func AppendBool(b []byte, num protowire.Number, v bool) []byte {
	return AppendVarint(b, num, protowire.EncodeBool(v))
}

// AppendMessage append an embedded message field
func AppendMessage(b []byte, num protowire.Number, m Message) []byte {
	return AppendBytes(b, num, m.Marshal())
}

func wrongType(num protowire.Number) error {
	return errors.Wrapf(ErrDecode, "field %d: wrong wire type", num)
}

// CheckType returns ErrDecode when a known field arrives with an unexpected wire type
func CheckType(num protowire.Number, got, want protowire.Type) error {
	if got != want {
		return wrongType(num)
	}
	return nil
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import "math"

// The type-tagged value grammar, expressed purely through the context
// stack and the lexical primitives. Both envelope codecs delegate
// their value operations here so the two wire formats cannot drift.

func (s *stream) writeStructBegin() error {
	return s.pushWrite(pairContext)
}

func (s *stream) writeStructEnd() error {
	return s.popWrite()
}

// writeFieldBegin emits the field id through the enclosing pair
// context (key position, so it comes out quoted), then opens the
// single-pair wrapper object and writes the type tag as its key.
func (s *stream) writeFieldBegin(typ Type, id int16) error {
	if err := s.writeInteger(int64(id)); err != nil {
		return err
	}
	if err := s.pushWrite(pairContext); err != nil {
		return err
	}
	return s.writeTypeTag(typ)
}

func (s *stream) writeFieldEnd() error {
	return s.popWrite()
}

// writeMapBegin opens the array header [keyTag, valueTag, count and
// then the object that will hold the pairs.
func (s *stream) writeMapBegin(keyType, valueType Type, size int) error {
	if err := s.pushWrite(listContext); err != nil {
		return err
	}
	if err := s.writeTypeTag(keyType); err != nil {
		return err
	}
	if err := s.writeTypeTag(valueType); err != nil {
		return err
	}
	if err := s.writeInteger(int64(size)); err != nil {
		return err
	}
	return s.pushWrite(pairContext)
}

func (s *stream) writeMapEnd() error {
	if err := s.popWrite(); err != nil {
		return err
	}
	return s.popWrite()
}

// writeListBegin opens the array header [elemTag, count. Sets share
// the shape and reuse it.
func (s *stream) writeListBegin(elemType Type, size int) error {
	if err := s.pushWrite(listContext); err != nil {
		return err
	}
	if err := s.writeTypeTag(elemType); err != nil {
		return err
	}
	return s.writeInteger(int64(size))
}

func (s *stream) writeListEnd() error {
	return s.popWrite()
}

func (s *stream) writeBool(v bool) error {
	if v {
		return s.writeInteger(1)
	}
	return s.writeInteger(0)
}

func (s *stream) readStructBegin() error {
	return s.pushRead(pairContext)
}

func (s *stream) readStructEnd() error {
	return s.popRead()
}

// readFieldBegin peeks for the struct-closing brace first: its absence
// means a field id follows. Ids are bounded by the 16-bit signed range.
func (s *stream) readFieldBegin() (Type, int16, error) {
	c, err := s.peek()
	if err != nil {
		return TypeStop, 0, err
	}
	if c == jsonObjectEnd {
		return TypeStop, 0, nil
	}
	id, err := s.readInteger()
	if err != nil {
		return TypeStop, 0, err
	}
	if id < 0 {
		return TypeStop, 0, invalidDataf("negative field id %d", id)
	}
	if id > math.MaxInt16 {
		return TypeStop, 0, &Error{Kind: KindSizeLimit, Message: "field id exceeds 16-bit range"}
	}
	if err := s.pushRead(pairContext); err != nil {
		return TypeStop, 0, err
	}
	typ, err := s.readTypeTag()
	if err != nil {
		return TypeStop, 0, err
	}
	return typ, int16(id), nil
}

func (s *stream) readFieldEnd() error {
	return s.popRead()
}

// readSize reads a container element count, bounded by the 32-bit
// signed range.
func (s *stream) readSize() (int, error) {
	n, err := s.readInteger()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, invalidDataf("negative container size %d", n)
	}
	if n > math.MaxInt32 {
		return 0, &Error{Kind: KindSizeLimit, Message: "container size exceeds 32-bit range"}
	}
	return int(n), nil
}

func (s *stream) readMapBegin() (keyType, valueType Type, size int, err error) {
	if err = s.pushRead(listContext); err != nil {
		return
	}
	if keyType, err = s.readTypeTag(); err != nil {
		return
	}
	if valueType, err = s.readTypeTag(); err != nil {
		return
	}
	if size, err = s.readSize(); err != nil {
		return
	}
	err = s.pushRead(pairContext)
	return
}

func (s *stream) readMapEnd() error {
	if err := s.popRead(); err != nil {
		return err
	}
	return s.popRead()
}

func (s *stream) readListBegin() (Type, int, error) {
	if err := s.pushRead(listContext); err != nil {
		return TypeStop, 0, err
	}
	elemType, err := s.readTypeTag()
	if err != nil {
		return TypeStop, 0, err
	}
	size, err := s.readSize()
	if err != nil {
		return TypeStop, 0, err
	}
	return elemType, size, nil
}

func (s *stream) readListEnd() error {
	return s.popRead()
}

func (s *stream) readBool() (bool, error) {
	n, err := s.readInteger()
	if err != nil {
		return false, err
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, invalidDataf("expected 0 or 1 for bool, got %d", n)
	}
}

// readIntegerRange reads an integer and verifies it fits in the
// receiving width.
func (s *stream) readIntegerRange(min, max int64, what string) (int64, error) {
	n, err := s.readInteger()
	if err != nil {
		return 0, err
	}
	if n < min || n > max {
		return 0, invalidDataf("%s out of range: %d", what, n)
	}
	return n, nil
}

func (s *stream) readByteValue() (int8, error) {
	n, err := s.readIntegerRange(math.MinInt8, math.MaxInt8, "byte")
	return int8(n), err
}

func (s *stream) readI16() (int16, error) {
	n, err := s.readIntegerRange(math.MinInt16, math.MaxInt16, "i16")
	return int16(n), err
}

func (s *stream) readI32() (int32, error) {
	n, err := s.readIntegerRange(math.MinInt32, math.MaxInt32, "i32")
	return int32(n), err
}

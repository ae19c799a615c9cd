// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"github.com/bureau-foundation/thriftjson/transport"
)

// Compile-time interface check.
var _ Protocol = (*JSONProtocol)(nil)

// jsonProtocolVersion is the version marker leading every compact
// message envelope.
const jsonProtocolVersion = 1

// JSONProtocol is the compact array-framed codec. A message is the
// ordered array [1, name, messageType, seqID, payload]: everything is
// positional, so the envelope streams in one pass with no buffering.
type JSONProtocol struct {
	s *stream
}

// NewJSONProtocol returns a compact codec bound to t.
func NewJSONProtocol(t transport.Transport) *JSONProtocol {
	return &JSONProtocol{s: newStream(t)}
}

// WriteMessageBegin opens the envelope array and writes the version,
// name, message type and sequence id. The caller writes the payload,
// then WriteMessageEnd closes the array.
func (p *JSONProtocol) WriteMessageBegin(name string, typ MessageType, seqID int32) error {
	if err := p.s.pushWrite(listContext); err != nil {
		return err
	}
	if err := p.s.writeInteger(jsonProtocolVersion); err != nil {
		return err
	}
	if err := p.s.writeString(name); err != nil {
		return err
	}
	if err := p.s.writeInteger(int64(typ)); err != nil {
		return err
	}
	return p.s.writeInteger(int64(seqID))
}

func (p *JSONProtocol) WriteMessageEnd() error {
	return p.s.popWrite()
}

func (p *JSONProtocol) WriteStructBegin(name string) error {
	return p.s.writeStructBegin()
}

func (p *JSONProtocol) WriteStructEnd() error {
	return p.s.writeStructEnd()
}

func (p *JSONProtocol) WriteFieldBegin(name string, typ Type, id int16) error {
	return p.s.writeFieldBegin(typ, id)
}

func (p *JSONProtocol) WriteFieldEnd() error {
	return p.s.writeFieldEnd()
}

func (p *JSONProtocol) WriteFieldStop() error {
	return nil
}

func (p *JSONProtocol) WriteMapBegin(keyType, valueType Type, size int) error {
	return p.s.writeMapBegin(keyType, valueType, size)
}

func (p *JSONProtocol) WriteMapEnd() error {
	return p.s.writeMapEnd()
}

func (p *JSONProtocol) WriteListBegin(elemType Type, size int) error {
	return p.s.writeListBegin(elemType, size)
}

func (p *JSONProtocol) WriteListEnd() error {
	return p.s.writeListEnd()
}

func (p *JSONProtocol) WriteSetBegin(elemType Type, size int) error {
	return p.s.writeListBegin(elemType, size)
}

func (p *JSONProtocol) WriteSetEnd() error {
	return p.s.writeListEnd()
}

func (p *JSONProtocol) WriteBool(v bool) error {
	return p.s.writeBool(v)
}

// WriteByte widens to the integer writer; bytes are plain JSON
// numbers on the wire.
func (p *JSONProtocol) WriteByte(v int8) error {
	return p.s.writeInteger(int64(v))
}

func (p *JSONProtocol) WriteI16(v int16) error {
	return p.s.writeInteger(int64(v))
}

func (p *JSONProtocol) WriteI32(v int32) error {
	return p.s.writeInteger(int64(v))
}

func (p *JSONProtocol) WriteI64(v int64) error {
	return p.s.writeInteger(v)
}

func (p *JSONProtocol) WriteDouble(v float64) error {
	return p.s.writeDouble(v)
}

func (p *JSONProtocol) WriteString(v string) error {
	return p.s.writeString(v)
}

func (p *JSONProtocol) WriteBinary(v []byte) error {
	return p.s.writeBase64(v)
}

// ReadMessageBegin opens the envelope array and reads the version
// (which must be 1), name, message type and sequence id. The payload
// follows positionally.
func (p *JSONProtocol) ReadMessageBegin() (string, MessageType, int32, error) {
	if err := p.s.pushRead(listContext); err != nil {
		return "", 0, 0, err
	}
	version, err := p.s.readInteger()
	if err != nil {
		return "", 0, 0, err
	}
	if version != jsonProtocolVersion {
		return "", 0, 0, &Error{Kind: KindBadVersion, Message: "message contained bad version"}
	}
	name, err := p.s.readString(false)
	if err != nil {
		return "", 0, 0, err
	}
	typ, err := p.s.readI32()
	if err != nil {
		return "", 0, 0, err
	}
	seqID, err := p.s.readI32()
	if err != nil {
		return "", 0, 0, err
	}
	return name, MessageType(typ), seqID, nil
}

func (p *JSONProtocol) ReadMessageEnd() error {
	return p.s.popRead()
}

func (p *JSONProtocol) ReadStructBegin() error {
	return p.s.readStructBegin()
}

func (p *JSONProtocol) ReadStructEnd() error {
	return p.s.readStructEnd()
}

func (p *JSONProtocol) ReadFieldBegin() (Type, int16, error) {
	return p.s.readFieldBegin()
}

func (p *JSONProtocol) ReadFieldEnd() error {
	return p.s.readFieldEnd()
}

func (p *JSONProtocol) ReadMapBegin() (Type, Type, int, error) {
	return p.s.readMapBegin()
}

func (p *JSONProtocol) ReadMapEnd() error {
	return p.s.readMapEnd()
}

func (p *JSONProtocol) ReadListBegin() (Type, int, error) {
	return p.s.readListBegin()
}

func (p *JSONProtocol) ReadListEnd() error {
	return p.s.readListEnd()
}

func (p *JSONProtocol) ReadSetBegin() (Type, int, error) {
	return p.s.readListBegin()
}

func (p *JSONProtocol) ReadSetEnd() error {
	return p.s.readListEnd()
}

func (p *JSONProtocol) ReadBool() (bool, error) {
	return p.s.readBool()
}

func (p *JSONProtocol) ReadByte() (int8, error) {
	return p.s.readByteValue()
}

func (p *JSONProtocol) ReadI16() (int16, error) {
	return p.s.readI16()
}

func (p *JSONProtocol) ReadI32() (int32, error) {
	return p.s.readI32()
}

func (p *JSONProtocol) ReadI64() (int64, error) {
	return p.s.readInteger()
}

func (p *JSONProtocol) ReadDouble() (float64, error) {
	return p.s.readDouble()
}

func (p *JSONProtocol) ReadString() (string, error) {
	return p.s.readString(false)
}

func (p *JSONProtocol) ReadBinary() ([]byte, error) {
	return p.s.readBase64()
}

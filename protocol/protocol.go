// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"github.com/bureau-foundation/thriftjson/transport"
)

// Protocol is the operation surface generated serializers drive. Write
// calls must nest correctly (message > struct > field > value). The
// context stack supplies separators and delimiters, and closing a scope
// when none is open fails with an invalid-data error; other misordered
// calls are not detected.
//
// A Protocol is bound to one transport for its lifetime and carries no
// state between completed messages.
type Protocol interface {
	WriteMessageBegin(name string, typ MessageType, seqID int32) error
	WriteMessageEnd() error
	WriteStructBegin(name string) error
	WriteStructEnd() error
	WriteFieldBegin(name string, typ Type, id int16) error
	WriteFieldEnd() error
	WriteFieldStop() error
	WriteMapBegin(keyType, valueType Type, size int) error
	WriteMapEnd() error
	WriteListBegin(elemType Type, size int) error
	WriteListEnd() error
	WriteSetBegin(elemType Type, size int) error
	WriteSetEnd() error
	WriteBool(v bool) error
	WriteByte(v int8) error
	WriteI16(v int16) error
	WriteI32(v int32) error
	WriteI64(v int64) error
	WriteDouble(v float64) error
	WriteString(v string) error
	WriteBinary(v []byte) error

	ReadMessageBegin() (name string, typ MessageType, seqID int32, err error)
	ReadMessageEnd() error
	ReadStructBegin() error
	ReadStructEnd() error
	ReadFieldBegin() (typ Type, id int16, err error)
	ReadFieldEnd() error
	ReadMapBegin() (keyType, valueType Type, size int, err error)
	ReadMapEnd() error
	ReadListBegin() (elemType Type, size int, err error)
	ReadListEnd() error
	ReadSetBegin() (elemType Type, size int, err error)
	ReadSetEnd() error
	ReadBool() (bool, error)
	ReadByte() (int8, error)
	ReadI16() (int16, error)
	ReadI32() (int32, error)
	ReadI64() (int64, error)
	ReadDouble() (float64, error)
	ReadString() (string, error)
	ReadBinary() ([]byte, error)
}

// Factory constructs protocol instances over transports. Server
// plumbing holds a Factory so the envelope encoding is chosen once
// per listener, not per connection.
type Factory interface {
	New(t transport.Transport) Protocol
}

// JSONFactory builds compact array-framed codecs.
type JSONFactory struct{}

func (JSONFactory) New(t transport.Transport) Protocol {
	return NewJSONProtocol(t)
}

// JSONRPCFactory builds JSON-RPC 2.0 codecs.
type JSONRPCFactory struct{}

func (JSONRPCFactory) New(t transport.Transport) Protocol {
	return NewJSONRPCProtocol(t)
}

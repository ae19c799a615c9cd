// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"github.com/bureau-foundation/thriftjson/transport"
)

// Compile-time interface check.
var _ Protocol = (*JSONRPCProtocol)(nil)

// JSON-RPC 2.0 envelope member keys.
const (
	keyJSONRPC = "jsonrpc"
	keyMethod  = "method"
	keyParams  = "params"
	keyID      = "id"
	keyResult  = "result"
	keyError   = "error"
	keyCode    = "code"
	keyMessage = "message"
	keyData    = "data"
)

// jsonrpcVersion is the literal value of the "jsonrpc" member.
const jsonrpcVersion = "2.0"

// Generic application exceptions map to the implementation-defined
// server error range of JSON-RPC 2.0.
const (
	genericErrorCode    = -32000
	genericErrorMessage = "Thrift exception"
)

// envelopeFlags records which envelope members have been observed
// (read side) or will be produced (write side). The compound states
// below are the recognized member combinations; anything else at
// end-of-envelope is malformed.
type envelopeFlags uint8

const (
	flagVersion envelopeFlags = 1 << iota
	flagMethod
	flagID
	flagParams
	flagResult
	flagErrCode
	flagErrMessage
	flagErrData
)

const (
	stateRequest          = flagVersion | flagID | flagMethod
	stateFullRequest      = stateRequest | flagParams
	stateNotification     = flagVersion | flagMethod
	stateFullNotification = stateNotification | flagParams
	stateResponse         = flagVersion | flagID | flagResult
	stateError            = flagVersion | flagID | flagErrCode | flagErrMessage
	stateFullError        = stateError | flagErrData
)

// JSONRPCProtocol is the object-framed codec: the same value grammar
// as [JSONProtocol], carried inside a JSON-RPC 2.0 envelope.
//
// Writing streams directly to the transport in the fixed key order
// (jsonrpc, method|result|error, params|data, id). Reading cannot
// stream: JSON object members are unordered, so the whole envelope is
// parsed first, payload members are captured verbatim into a memory
// buffer, and once the message kind is known the codec rebinds its
// value reads to that buffer. Generated-stub reads between
// ReadMessageBegin and ReadMessageEnd therefore consume the buffered
// payload, in order, exactly as if it had arrived positionally.
type JSONRPCProtocol struct {
	transStream *stream
	buf         *transport.MemoryBuffer
	bufStream   *stream

	// buffered selects the active stream: false until the envelope has
	// been resolved on read, true from then until ReadMessageEnd.
	buffered bool

	flags        envelopeFlags
	method       string
	id           int32
	errorCode    int32
	errorMessage string
}

// NewJSONRPCProtocol returns a JSON-RPC 2.0 codec bound to t.
func NewJSONRPCProtocol(t transport.Transport) *JSONRPCProtocol {
	buf := transport.NewMemoryBuffer()
	return &JSONRPCProtocol{
		transStream: newStream(t),
		buf:         buf,
		bufStream:   newStream(buf),
	}
}

// stream returns the stream value operations currently apply to.
func (p *JSONRPCProtocol) stream() *stream {
	if p.buffered {
		return p.bufStream
	}
	return p.transStream
}

// WriteMessageBegin opens the envelope and writes every member that
// precedes the payload slot. The target flag state is computed
// directly from the message type; the payload member key is written
// here so the caller's struct lands in the right slot.
func (p *JSONRPCProtocol) WriteMessageBegin(name string, typ MessageType, seqID int32) error {
	p.buffered = false
	p.buf.Reset()
	p.bufStream.reset()

	s := p.transStream
	if err := s.writeStructBegin(); err != nil {
		return err
	}
	if err := s.writeString(keyJSONRPC); err != nil {
		return err
	}
	if err := s.writeString(jsonrpcVersion); err != nil {
		return err
	}

	switch typ {
	case MessageCall, MessageOneway:
		p.method = name
		if typ == MessageCall {
			p.id = seqID
			p.flags = stateRequest
		} else {
			p.flags = stateNotification
		}
		if err := s.writeString(keyMethod); err != nil {
			return err
		}
		if err := s.writeString(p.method); err != nil {
			return err
		}
		return s.writeString(keyParams)
	case MessageReply:
		p.id = seqID
		p.flags = stateResponse
		return s.writeString(keyResult)
	case MessageException:
		p.id = seqID
		p.errorCode = genericErrorCode
		p.errorMessage = genericErrorMessage
		p.flags = stateError
		if err := s.writeString(keyError); err != nil {
			return err
		}
		if err := s.writeStructBegin(); err != nil {
			return err
		}
		if err := s.writeString(keyCode); err != nil {
			return err
		}
		if err := s.writeInteger(int64(p.errorCode)); err != nil {
			return err
		}
		if err := s.writeString(keyMessage); err != nil {
			return err
		}
		if err := s.writeString(p.errorMessage); err != nil {
			return err
		}
		return s.writeString(keyData)
	default:
		p.flags = 0
		return &Error{Kind: KindNotImplemented, Message: "unrecognized message type"}
	}
}

// WriteMessageEnd writes the envelope tail for the state established
// by WriteMessageBegin (closing the error object where one is open,
// then the id for every kind that carries one) and closes the
// envelope.
func (p *JSONRPCProtocol) WriteMessageEnd() error {
	s := p.transStream
	switch p.flags {
	case stateRequest, stateResponse:
		if err := p.writeIDTail(s); err != nil {
			return err
		}
	case stateError:
		if err := s.writeStructEnd(); err != nil {
			return err
		}
		if err := p.writeIDTail(s); err != nil {
			return err
		}
	case stateNotification:
		// Notifications carry no id.
	default:
		p.flags = 0
		return invalidDataf("invalid JSON-RPC message state")
	}
	if err := s.writeStructEnd(); err != nil {
		return err
	}
	p.buf.Reset()
	p.flags = 0
	return nil
}

func (p *JSONRPCProtocol) writeIDTail(s *stream) error {
	if err := s.writeString(keyID); err != nil {
		return err
	}
	return s.writeInteger(int64(p.id))
}

// ReadMessageBegin parses the complete envelope first: members arrive
// in any order, so nothing can be answered until the closing brace.
// It then resolves the message kind from the observed member set and
// rebinds value reads to the captured payload.
func (p *JSONRPCProtocol) ReadMessageBegin() (string, MessageType, int32, error) {
	p.buffered = false
	p.buf.Reset()
	p.bufStream.reset()
	p.flags = 0

	s := p.transStream
	if err := s.readStructBegin(); err != nil {
		return "", 0, 0, err
	}
	for {
		c, err := s.peek()
		if err != nil {
			return "", 0, 0, err
		}
		if c == jsonObjectEnd {
			break
		}
		if err := p.readEnvelopeMember(s); err != nil {
			return "", 0, 0, err
		}
	}
	if err := s.readStructEnd(); err != nil {
		return "", 0, 0, err
	}

	var name string
	var typ MessageType
	var seqID int32
	switch p.flags {
	case stateRequest, stateFullRequest:
		name, typ, seqID = p.method, MessageCall, p.id
		if p.flags == stateRequest {
			p.synthesizeEmptyPayload()
		}
	case stateNotification, stateFullNotification:
		// Notifications carry no id; report a dummy sequence number.
		name, typ, seqID = p.method, MessageOneway, 0
		if p.flags == stateNotification {
			p.synthesizeEmptyPayload()
		}
	case stateResponse:
		// Responses carry no method name; callers match by seqID.
		name, typ, seqID = "", MessageReply, p.id
	case stateError, stateFullError:
		name, typ, seqID = "", MessageException, p.id
		if p.flags == stateError {
			p.synthesizeEmptyPayload()
		}
	default:
		p.buf.Reset()
		p.flags = 0
		return "", 0, 0, invalidDataf("invalid JSON-RPC member combination")
	}

	p.buffered = true
	return name, typ, seqID, nil
}

// synthesizeEmptyPayload writes {} into the payload buffer so that
// generated-stub reads observe an empty struct when the payload member
// was absent from the wire.
func (p *JSONRPCProtocol) synthesizeEmptyPayload() {
	p.buf.WriteByte(jsonObjectStart)
	p.buf.WriteByte(jsonObjectEnd)
}

// readEnvelopeMember reads one key and dispatches on it. The error
// member recurses with the same dispatch table for its code, message
// and data members; an empty error object is malformed.
func (p *JSONRPCProtocol) readEnvelopeMember(s *stream) error {
	key, err := s.readString(false)
	if err != nil {
		return err
	}
	switch key {
	case keyJSONRPC:
		version, err := s.readString(false)
		if err != nil {
			return err
		}
		if version != jsonrpcVersion {
			return &Error{Kind: KindBadVersion, Message: "message contained bad version"}
		}
		p.flags |= flagVersion
	case keyMethod:
		if p.method, err = s.readString(false); err != nil {
			return err
		}
		p.flags |= flagMethod
	case keyID:
		if p.id, err = s.readI32(); err != nil {
			return err
		}
		p.flags |= flagID
	case keyParams:
		if err := s.slurpObject(p.buf); err != nil {
			return err
		}
		p.flags |= flagParams
	case keyResult:
		if err := s.slurpObject(p.buf); err != nil {
			return err
		}
		p.flags |= flagResult
	case keyError:
		if err := s.readStructBegin(); err != nil {
			return err
		}
		for {
			if err := p.readEnvelopeMember(s); err != nil {
				return err
			}
			c, err := s.peek()
			if err != nil {
				return err
			}
			if c == jsonObjectEnd {
				break
			}
		}
		return s.readStructEnd()
	case keyCode:
		if p.errorCode, err = s.readI32(); err != nil {
			return err
		}
		p.flags |= flagErrCode
	case keyMessage:
		if p.errorMessage, err = s.readString(false); err != nil {
			return err
		}
		p.flags |= flagErrMessage
	case keyData:
		if err := s.slurpObject(p.buf); err != nil {
			return err
		}
		p.flags |= flagErrData
	default:
		return invalidDataf("unknown JSON-RPC keyword %q", key)
	}
	return nil
}

// ReadMessageEnd discards the payload buffer and rebinds reads to the
// transport for the next message.
func (p *JSONRPCProtocol) ReadMessageEnd() error {
	p.buf.Reset()
	p.bufStream.reset()
	p.flags = 0
	p.buffered = false
	return nil
}

func (p *JSONRPCProtocol) WriteStructBegin(name string) error {
	return p.stream().writeStructBegin()
}

func (p *JSONRPCProtocol) WriteStructEnd() error {
	return p.stream().writeStructEnd()
}

func (p *JSONRPCProtocol) WriteFieldBegin(name string, typ Type, id int16) error {
	return p.stream().writeFieldBegin(typ, id)
}

func (p *JSONRPCProtocol) WriteFieldEnd() error {
	return p.stream().writeFieldEnd()
}

func (p *JSONRPCProtocol) WriteFieldStop() error {
	return nil
}

func (p *JSONRPCProtocol) WriteMapBegin(keyType, valueType Type, size int) error {
	return p.stream().writeMapBegin(keyType, valueType, size)
}

func (p *JSONRPCProtocol) WriteMapEnd() error {
	return p.stream().writeMapEnd()
}

func (p *JSONRPCProtocol) WriteListBegin(elemType Type, size int) error {
	return p.stream().writeListBegin(elemType, size)
}

func (p *JSONRPCProtocol) WriteListEnd() error {
	return p.stream().writeListEnd()
}

func (p *JSONRPCProtocol) WriteSetBegin(elemType Type, size int) error {
	return p.stream().writeListBegin(elemType, size)
}

func (p *JSONRPCProtocol) WriteSetEnd() error {
	return p.stream().writeListEnd()
}

func (p *JSONRPCProtocol) WriteBool(v bool) error {
	return p.stream().writeBool(v)
}

func (p *JSONRPCProtocol) WriteByte(v int8) error {
	return p.stream().writeInteger(int64(v))
}

func (p *JSONRPCProtocol) WriteI16(v int16) error {
	return p.stream().writeInteger(int64(v))
}

func (p *JSONRPCProtocol) WriteI32(v int32) error {
	return p.stream().writeInteger(int64(v))
}

func (p *JSONRPCProtocol) WriteI64(v int64) error {
	return p.stream().writeInteger(v)
}

func (p *JSONRPCProtocol) WriteDouble(v float64) error {
	return p.stream().writeDouble(v)
}

func (p *JSONRPCProtocol) WriteString(v string) error {
	return p.stream().writeString(v)
}

func (p *JSONRPCProtocol) WriteBinary(v []byte) error {
	return p.stream().writeBase64(v)
}

func (p *JSONRPCProtocol) ReadStructBegin() error {
	return p.stream().readStructBegin()
}

func (p *JSONRPCProtocol) ReadStructEnd() error {
	return p.stream().readStructEnd()
}

func (p *JSONRPCProtocol) ReadFieldBegin() (Type, int16, error) {
	return p.stream().readFieldBegin()
}

func (p *JSONRPCProtocol) ReadFieldEnd() error {
	return p.stream().readFieldEnd()
}

func (p *JSONRPCProtocol) ReadMapBegin() (Type, Type, int, error) {
	return p.stream().readMapBegin()
}

func (p *JSONRPCProtocol) ReadMapEnd() error {
	return p.stream().readMapEnd()
}

func (p *JSONRPCProtocol) ReadListBegin() (Type, int, error) {
	return p.stream().readListBegin()
}

func (p *JSONRPCProtocol) ReadListEnd() error {
	return p.stream().readListEnd()
}

func (p *JSONRPCProtocol) ReadSetBegin() (Type, int, error) {
	return p.stream().readListBegin()
}

func (p *JSONRPCProtocol) ReadSetEnd() error {
	return p.stream().readListEnd()
}

func (p *JSONRPCProtocol) ReadBool() (bool, error) {
	return p.stream().readBool()
}

func (p *JSONRPCProtocol) ReadByte() (int8, error) {
	return p.stream().readByteValue()
}

func (p *JSONRPCProtocol) ReadI16() (int16, error) {
	return p.stream().readI16()
}

func (p *JSONRPCProtocol) ReadI32() (int32, error) {
	return p.stream().readI32()
}

func (p *JSONRPCProtocol) ReadI64() (int64, error) {
	return p.stream().readInteger()
}

func (p *JSONRPCProtocol) ReadDouble() (float64, error) {
	return p.stream().readDouble()
}

func (p *JSONRPCProtocol) ReadString() (string, error) {
	return p.stream().readString(false)
}

func (p *JSONRPCProtocol) ReadBinary() ([]byte, error) {
	return p.stream().readBase64()
}

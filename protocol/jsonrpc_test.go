// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"testing"

	"github.com/bureau-foundation/thriftjson/lib/testutil"
	"github.com/bureau-foundation/thriftjson/transport"
)

// writeEmptyStruct emulates the generated argument writer of a method
// with no parameters.
func writeEmptyStruct(t *testing.T, p Protocol) {
	t.Helper()
	testutil.RequireNoError(t, p.WriteStructBegin(""), "WriteStructBegin")
	testutil.RequireNoError(t, p.WriteFieldStop(), "WriteFieldStop")
	testutil.RequireNoError(t, p.WriteStructEnd(), "WriteStructEnd")
}

// writeI32Result emulates a generated result writer: one i32 success
// field with the given id.
func writeI32Result(t *testing.T, p Protocol, id int16, value int32) {
	t.Helper()
	testutil.RequireNoError(t, p.WriteStructBegin(""), "WriteStructBegin")
	testutil.RequireNoError(t, p.WriteFieldBegin("success", TypeI32, id), "WriteFieldBegin")
	testutil.RequireNoError(t, p.WriteI32(value), "WriteI32")
	testutil.RequireNoError(t, p.WriteFieldEnd(), "WriteFieldEnd")
	testutil.RequireNoError(t, p.WriteFieldStop(), "WriteFieldStop")
	testutil.RequireNoError(t, p.WriteStructEnd(), "WriteStructEnd")
}

func TestJSONRPCWriteRequest(t *testing.T) {
	buffer := transport.NewMemoryBuffer()
	codec := NewJSONRPCProtocol(buffer)

	testutil.RequireNoError(t, codec.WriteMessageBegin("primitiveMethod", MessageCall, 0), "WriteMessageBegin")
	writeEmptyStruct(t, codec)
	testutil.RequireNoError(t, codec.WriteMessageEnd(), "WriteMessageEnd")

	testutil.RequireBytes(t, buffer.String(),
		`{"jsonrpc":"2.0","method":"primitiveMethod","params":{},"id":0}`,
		"request envelope")
	testutil.RequireEqual(t, codec.transStream.depth(), 0, "depth after write")
}

func TestJSONRPCWriteReply(t *testing.T) {
	buffer := transport.NewMemoryBuffer()
	codec := NewJSONRPCProtocol(buffer)

	testutil.RequireNoError(t, codec.WriteMessageBegin("primitiveMethod", MessageReply, 999), "WriteMessageBegin")
	writeI32Result(t, codec, 0, 21)
	testutil.RequireNoError(t, codec.WriteMessageEnd(), "WriteMessageEnd")

	testutil.RequireBytes(t, buffer.String(),
		`{"jsonrpc":"2.0","result":{"0":{"i32":21}},"id":999}`,
		"reply envelope")
}

func TestJSONRPCWriteNotification(t *testing.T) {
	buffer := transport.NewMemoryBuffer()
	codec := NewJSONRPCProtocol(buffer)

	testutil.RequireNoError(t, codec.WriteMessageBegin("onewayMethod", MessageOneway, 0), "WriteMessageBegin")
	writeEmptyStruct(t, codec)
	testutil.RequireNoError(t, codec.WriteMessageEnd(), "WriteMessageEnd")

	testutil.RequireBytes(t, buffer.String(),
		`{"jsonrpc":"2.0","method":"onewayMethod","params":{}}`,
		"notification envelope has no id")
}

func TestJSONRPCWriteRequestWithArgs(t *testing.T) {
	buffer := transport.NewMemoryBuffer()
	codec := NewJSONRPCProtocol(buffer)

	testutil.RequireNoError(t, codec.WriteMessageBegin("methodWithDefaultArgs", MessageCall, 0), "WriteMessageBegin")
	testutil.RequireNoError(t, codec.WriteStructBegin(""), "WriteStructBegin")
	testutil.RequireNoError(t, codec.WriteFieldBegin("arg", TypeI32, 1), "WriteFieldBegin")
	testutil.RequireNoError(t, codec.WriteI32(55), "WriteI32")
	testutil.RequireNoError(t, codec.WriteFieldEnd(), "WriteFieldEnd")
	testutil.RequireNoError(t, codec.WriteFieldStop(), "WriteFieldStop")
	testutil.RequireNoError(t, codec.WriteStructEnd(), "WriteStructEnd")
	testutil.RequireNoError(t, codec.WriteMessageEnd(), "WriteMessageEnd")

	testutil.RequireBytes(t, buffer.String(),
		`{"jsonrpc":"2.0","method":"methodWithDefaultArgs","params":{"1":{"i32":55}},"id":0}`,
		"request with args")
}

func TestJSONRPCWriteException(t *testing.T) {
	buffer := transport.NewMemoryBuffer()
	codec := NewJSONRPCProtocol(buffer)

	testutil.RequireNoError(t, codec.WriteMessageBegin("voidMethod", MessageException, 999), "WriteMessageBegin")
	// Emulate the generated application-exception writer: message
	// string in field 1, numeric error type in field 2.
	testutil.RequireNoError(t, codec.WriteStructBegin("TApplicationException"), "WriteStructBegin")
	testutil.RequireNoError(t, codec.WriteFieldBegin("message", TypeString, 1), "field 1 begin")
	testutil.RequireNoError(t, codec.WriteString("Exception"), "message")
	testutil.RequireNoError(t, codec.WriteFieldEnd(), "field 1 end")
	testutil.RequireNoError(t, codec.WriteFieldBegin("type", TypeI32, 2), "field 2 begin")
	testutil.RequireNoError(t, codec.WriteI32(0), "type")
	testutil.RequireNoError(t, codec.WriteFieldEnd(), "field 2 end")
	testutil.RequireNoError(t, codec.WriteFieldStop(), "WriteFieldStop")
	testutil.RequireNoError(t, codec.WriteStructEnd(), "WriteStructEnd")
	testutil.RequireNoError(t, codec.WriteMessageEnd(), "WriteMessageEnd")

	testutil.RequireBytes(t, buffer.String(),
		`{"jsonrpc":"2.0","error":{"code":-32000,"message":"Thrift exception","data":{"1":{"str":"Exception"},"2":{"i32":0}}},"id":999}`,
		"error envelope")
}

func TestJSONRPCWriteUnknownMessageType(t *testing.T) {
	codec := NewJSONRPCProtocol(transport.NewMemoryBuffer())
	err := codec.WriteMessageBegin("x", MessageType(9), 1)
	if !IsKind(err, KindNotImplemented) {
		t.Fatalf("unknown message type error = %v, want not implemented", err)
	}
}

func TestJSONRPCReadRequestAndReply(t *testing.T) {
	request := `{"jsonrpc":"2.0","method":"Janky","params":{"1":{"i32":100}},"id":1}`
	in := NewJSONRPCProtocol(transport.NewMemoryBufferString(request))

	name, typ, seqID, err := in.ReadMessageBegin()
	testutil.RequireNoError(t, err, "ReadMessageBegin")
	testutil.RequireEqual(t, name, "Janky", "method name")
	testutil.RequireEqual(t, typ, MessageCall, "message type")
	testutil.RequireEqual(t, seqID, int32(1), "seq id")

	// The argument struct now reads from the captured payload buffer.
	testutil.RequireNoError(t, in.ReadStructBegin(), "ReadStructBegin")
	fieldType, fieldID, err := in.ReadFieldBegin()
	testutil.RequireNoError(t, err, "ReadFieldBegin")
	testutil.RequireEqual(t, fieldType, TypeI32, "arg type")
	testutil.RequireEqual(t, fieldID, int16(1), "arg id")
	arg, err := in.ReadI32()
	testutil.RequireNoError(t, err, "ReadI32")
	testutil.RequireEqual(t, arg, int32(100), "arg value")
	testutil.RequireNoError(t, in.ReadFieldEnd(), "ReadFieldEnd")
	fieldType, _, err = in.ReadFieldBegin()
	testutil.RequireNoError(t, err, "ReadFieldBegin at stop")
	testutil.RequireEqual(t, fieldType, TypeStop, "stop")
	testutil.RequireNoError(t, in.ReadStructEnd(), "ReadStructEnd")
	testutil.RequireNoError(t, in.ReadMessageEnd(), "ReadMessageEnd")
	testutil.RequireEqual(t, in.buf.Len(), 0, "payload buffer cleared")

	// Dispatch result: reply with seq id matched from the request.
	out := transport.NewMemoryBuffer()
	reply := NewJSONRPCProtocol(out)
	testutil.RequireNoError(t, reply.WriteMessageBegin(name, MessageReply, seqID), "WriteMessageBegin")
	writeI32Result(t, reply, 0, 0)
	testutil.RequireNoError(t, reply.WriteMessageEnd(), "WriteMessageEnd")
	testutil.RequireBytes(t, out.String(),
		`{"jsonrpc":"2.0","result":{"0":{"i32":0}},"id":1}`,
		"dispatched reply")
}

func TestJSONRPCReadRequestWithoutParams(t *testing.T) {
	request := `{"jsonrpc":"2.0","method":"primitiveMethod","id":55}`
	in := NewJSONRPCProtocol(transport.NewMemoryBufferString(request))

	name, typ, seqID, err := in.ReadMessageBegin()
	testutil.RequireNoError(t, err, "ReadMessageBegin")
	testutil.RequireEqual(t, name, "primitiveMethod", "method name")
	testutil.RequireEqual(t, typ, MessageCall, "message type")
	testutil.RequireEqual(t, seqID, int32(55), "seq id")

	// The decoder synthesized {}: generated code observes an empty
	// argument struct.
	testutil.RequireNoError(t, in.ReadStructBegin(), "ReadStructBegin")
	fieldType, _, err := in.ReadFieldBegin()
	testutil.RequireNoError(t, err, "ReadFieldBegin")
	testutil.RequireEqual(t, fieldType, TypeStop, "empty synthesized struct")
	testutil.RequireNoError(t, in.ReadStructEnd(), "ReadStructEnd")
	testutil.RequireNoError(t, in.ReadMessageEnd(), "ReadMessageEnd")
}

func TestJSONRPCReadNotification(t *testing.T) {
	for _, wire := range []string{
		`{"jsonrpc":"2.0","method":"onewayMethod"}`,
		`{"jsonrpc":"2.0","method":"onewayMethod","params":{}}`,
	} {
		in := NewJSONRPCProtocol(transport.NewMemoryBufferString(wire))
		name, typ, seqID, err := in.ReadMessageBegin()
		testutil.RequireNoError(t, err, "ReadMessageBegin")
		testutil.RequireEqual(t, name, "onewayMethod", "method name")
		testutil.RequireEqual(t, typ, MessageOneway, "message type")
		testutil.RequireEqual(t, seqID, int32(0), "oneway seq id is a dummy")

		testutil.RequireNoError(t, in.ReadStructBegin(), "ReadStructBegin")
		fieldType, _, err := in.ReadFieldBegin()
		testutil.RequireNoError(t, err, "ReadFieldBegin")
		testutil.RequireEqual(t, fieldType, TypeStop, "empty params")
		testutil.RequireNoError(t, in.ReadStructEnd(), "ReadStructEnd")
		testutil.RequireNoError(t, in.ReadMessageEnd(), "ReadMessageEnd")
	}
}

func TestJSONRPCReadResponse(t *testing.T) {
	wire := `{"jsonrpc":"2.0","result":{"0":{"i32":21}},"id":999}`
	in := NewJSONRPCProtocol(transport.NewMemoryBufferString(wire))

	name, typ, seqID, err := in.ReadMessageBegin()
	testutil.RequireNoError(t, err, "ReadMessageBegin")
	testutil.RequireEqual(t, name, "", "responses carry no method name")
	testutil.RequireEqual(t, typ, MessageReply, "message type")
	testutil.RequireEqual(t, seqID, int32(999), "seq id")

	testutil.RequireNoError(t, in.ReadStructBegin(), "ReadStructBegin")
	fieldType, fieldID, err := in.ReadFieldBegin()
	testutil.RequireNoError(t, err, "ReadFieldBegin")
	testutil.RequireEqual(t, fieldType, TypeI32, "success type")
	testutil.RequireEqual(t, fieldID, int16(0), "success id")
	value, err := in.ReadI32()
	testutil.RequireNoError(t, err, "ReadI32")
	testutil.RequireEqual(t, value, int32(21), "success value")
	testutil.RequireNoError(t, in.ReadFieldEnd(), "ReadFieldEnd")
	fieldType, _, err = in.ReadFieldBegin()
	testutil.RequireNoError(t, err, "stop")
	testutil.RequireEqual(t, fieldType, TypeStop, "stop")
	testutil.RequireNoError(t, in.ReadStructEnd(), "ReadStructEnd")
	testutil.RequireNoError(t, in.ReadMessageEnd(), "ReadMessageEnd")
}

func TestJSONRPCReadError(t *testing.T) {
	wire := `{"jsonrpc":"2.0","error":{"code":-32000,"message":"Thrift exception","data":{"1":{"str":"Exception"},"2":{"i32":0}}},"id":999}`
	in := NewJSONRPCProtocol(transport.NewMemoryBufferString(wire))

	name, typ, seqID, err := in.ReadMessageBegin()
	testutil.RequireNoError(t, err, "ReadMessageBegin")
	testutil.RequireEqual(t, name, "", "errors carry no method name")
	testutil.RequireEqual(t, typ, MessageException, "message type")
	testutil.RequireEqual(t, seqID, int32(999), "seq id")

	// The exception payload reads back from the captured data member.
	testutil.RequireNoError(t, in.ReadStructBegin(), "ReadStructBegin")
	fieldType, fieldID, err := in.ReadFieldBegin()
	testutil.RequireNoError(t, err, "ReadFieldBegin")
	testutil.RequireEqual(t, fieldType, TypeString, "message field type")
	testutil.RequireEqual(t, fieldID, int16(1), "message field id")
	message, err := in.ReadString()
	testutil.RequireNoError(t, err, "ReadString")
	testutil.RequireEqual(t, message, "Exception", "exception message")
	testutil.RequireNoError(t, in.ReadFieldEnd(), "ReadFieldEnd")
	fieldType, fieldID, err = in.ReadFieldBegin()
	testutil.RequireNoError(t, err, "ReadFieldBegin")
	testutil.RequireEqual(t, fieldType, TypeI32, "type field type")
	testutil.RequireEqual(t, fieldID, int16(2), "type field id")
	code, err := in.ReadI32()
	testutil.RequireNoError(t, err, "ReadI32")
	testutil.RequireEqual(t, code, int32(0), "exception type")
	testutil.RequireNoError(t, in.ReadFieldEnd(), "ReadFieldEnd")
	fieldType, _, err = in.ReadFieldBegin()
	testutil.RequireNoError(t, err, "stop")
	testutil.RequireEqual(t, fieldType, TypeStop, "stop")
	testutil.RequireNoError(t, in.ReadStructEnd(), "ReadStructEnd")
	testutil.RequireNoError(t, in.ReadMessageEnd(), "ReadMessageEnd")
}

func TestJSONRPCReadErrorWithoutData(t *testing.T) {
	wire := `{"jsonrpc":"2.0","error":{"code":-32000,"message":"Thrift exception"},"id":7}`
	in := NewJSONRPCProtocol(transport.NewMemoryBufferString(wire))

	_, typ, seqID, err := in.ReadMessageBegin()
	testutil.RequireNoError(t, err, "ReadMessageBegin")
	testutil.RequireEqual(t, typ, MessageException, "message type")
	testutil.RequireEqual(t, seqID, int32(7), "seq id")

	testutil.RequireNoError(t, in.ReadStructBegin(), "ReadStructBegin")
	fieldType, _, err := in.ReadFieldBegin()
	testutil.RequireNoError(t, err, "ReadFieldBegin")
	testutil.RequireEqual(t, fieldType, TypeStop, "synthesized empty data")
	testutil.RequireNoError(t, in.ReadStructEnd(), "ReadStructEnd")
	testutil.RequireNoError(t, in.ReadMessageEnd(), "ReadMessageEnd")
}

// JSON object members are unordered: the envelope must resolve no
// matter where the payload and id land.
func TestJSONRPCReadUnorderedEnvelope(t *testing.T) {
	wire := `{"id":5,"params":{"1":{"i32":9}},"method":"shuffled","jsonrpc":"2.0"}`
	in := NewJSONRPCProtocol(transport.NewMemoryBufferString(wire))

	name, typ, seqID, err := in.ReadMessageBegin()
	testutil.RequireNoError(t, err, "ReadMessageBegin")
	testutil.RequireEqual(t, name, "shuffled", "method name")
	testutil.RequireEqual(t, typ, MessageCall, "message type")
	testutil.RequireEqual(t, seqID, int32(5), "seq id")

	testutil.RequireNoError(t, in.ReadStructBegin(), "ReadStructBegin")
	fieldType, fieldID, err := in.ReadFieldBegin()
	testutil.RequireNoError(t, err, "ReadFieldBegin")
	testutil.RequireEqual(t, fieldType, TypeI32, "arg type")
	testutil.RequireEqual(t, fieldID, int16(1), "arg id")
	value, err := in.ReadI32()
	testutil.RequireNoError(t, err, "ReadI32")
	testutil.RequireEqual(t, value, int32(9), "arg value")
	testutil.RequireNoError(t, in.ReadFieldEnd(), "ReadFieldEnd")
	fieldType, _, err = in.ReadFieldBegin()
	testutil.RequireNoError(t, err, "stop")
	testutil.RequireEqual(t, fieldType, TypeStop, "stop")
	testutil.RequireNoError(t, in.ReadStructEnd(), "ReadStructEnd")
	testutil.RequireNoError(t, in.ReadMessageEnd(), "ReadMessageEnd")
}

func TestJSONRPCReadRejectsBadEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		wire string
		kind Kind
	}{
		{"bad version", `{"jsonrpc":"1.0","method":"x","id":1}`, KindBadVersion},
		{"unknown key", `{"jsonrpc":"2.0","bogus":"x","id":1}`, KindInvalidData},
		{"empty envelope", `{}`, KindInvalidData},
		{"method without version", `{"method":"x","id":1}`, KindInvalidData},
		{"id only", `{"jsonrpc":"2.0","id":1}`, KindInvalidData},
		{"result and error", `{"jsonrpc":"2.0","result":{},"error":{"code":1,"message":"x"},"id":1}`, KindInvalidData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewJSONRPCProtocol(transport.NewMemoryBufferString(tt.wire))
			if _, _, _, err := in.ReadMessageBegin(); !IsKind(err, tt.kind) {
				t.Fatalf("ReadMessageBegin error = %v, want kind %v", err, tt.kind)
			}
		})
	}
}

// Scenario: a server loop reads a request and writes the matching
// reply over a second codec, exercising both directions end to end.
func TestJSONRPCServerExchange(t *testing.T) {
	tests := []struct {
		name      string
		request   string
		wantReply string
	}{
		{
			"call with args",
			`{"jsonrpc":"2.0","method":"Janky","params":{"1":{"i32":100}},"id":1}`,
			`{"jsonrpc":"2.0","result":{"0":{"i32":0}},"id":1}`,
		},
		{
			"call without params",
			`{"jsonrpc":"2.0","method":"primitiveMethod","id":55}`,
			`{"jsonrpc":"2.0","result":{"0":{"i32":0}},"id":55}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewJSONRPCProtocol(transport.NewMemoryBufferString(tt.request))
			name, typ, seqID, err := in.ReadMessageBegin()
			testutil.RequireNoError(t, err, "ReadMessageBegin")
			testutil.RequireEqual(t, typ, MessageCall, "message type")

			// Drain the argument struct the way a generated processor
			// does for arguments it ignores.
			testutil.RequireNoError(t, Skip(in, TypeStruct), "skip args")
			testutil.RequireNoError(t, in.ReadMessageEnd(), "ReadMessageEnd")

			out := transport.NewMemoryBuffer()
			reply := NewJSONRPCProtocol(out)
			testutil.RequireNoError(t, reply.WriteMessageBegin(name, MessageReply, seqID), "WriteMessageBegin")
			writeI32Result(t, reply, 0, 0)
			testutil.RequireNoError(t, reply.WriteMessageEnd(), "WriteMessageEnd")
			testutil.RequireBytes(t, out.String(), tt.wantReply, "reply bytes")
		})
	}
}

// UTF-16 escape handling must round-trip astral-plane characters
// through a complete message exchange.
func TestJSONRPCSurrogateRoundTrip(t *testing.T) {
	clef := "\xf0\x9d\x84\x9e" // U+1D11E, surrogate pair d834,dd1e

	buffer := transport.NewMemoryBuffer()
	writer := NewJSONRPCProtocol(buffer)
	testutil.RequireNoError(t, writer.WriteMessageBegin("echo", MessageReply, 1), "WriteMessageBegin")
	testutil.RequireNoError(t, writer.WriteStructBegin(""), "WriteStructBegin")
	testutil.RequireNoError(t, writer.WriteFieldBegin("success", TypeString, 0), "WriteFieldBegin")
	testutil.RequireNoError(t, writer.WriteString(clef), "WriteString")
	testutil.RequireNoError(t, writer.WriteFieldEnd(), "WriteFieldEnd")
	testutil.RequireNoError(t, writer.WriteFieldStop(), "WriteFieldStop")
	testutil.RequireNoError(t, writer.WriteStructEnd(), "WriteStructEnd")
	testutil.RequireNoError(t, writer.WriteMessageEnd(), "WriteMessageEnd")

	reader := NewJSONRPCProtocol(transport.NewMemoryBufferString(buffer.String()))
	_, _, _, err := reader.ReadMessageBegin()
	testutil.RequireNoError(t, err, "ReadMessageBegin")
	testutil.RequireNoError(t, reader.ReadStructBegin(), "ReadStructBegin")
	_, _, err = reader.ReadFieldBegin()
	testutil.RequireNoError(t, err, "ReadFieldBegin")
	got, err := reader.ReadString()
	testutil.RequireNoError(t, err, "ReadString")
	testutil.RequireBytes(t, got, clef, "surrogate round trip")

	// The same value arriving as explicit \u escapes decodes to
	// identical bytes.
	escaped := NewJSONRPCProtocol(transport.NewMemoryBufferString(
		`{"jsonrpc":"2.0","result":{"0":{"str":"\ud834\udd1e"}},"id":1}`))
	_, _, _, err = escaped.ReadMessageBegin()
	testutil.RequireNoError(t, err, "ReadMessageBegin escaped")
	testutil.RequireNoError(t, escaped.ReadStructBegin(), "ReadStructBegin")
	_, _, err = escaped.ReadFieldBegin()
	testutil.RequireNoError(t, err, "ReadFieldBegin")
	got, err = escaped.ReadString()
	testutil.RequireNoError(t, err, "ReadString")
	testutil.RequireBytes(t, got, clef, "escaped surrogate decode")
}

// A codec must be reusable across sequential messages: per-message
// state is discarded at every boundary.
func TestJSONRPCSequentialMessages(t *testing.T) {
	wire := `{"jsonrpc":"2.0","method":"first","params":{"1":{"i32":1}},"id":1}` +
		`{"jsonrpc":"2.0","method":"second","id":2}`
	in := NewJSONRPCProtocol(transport.NewMemoryBufferString(wire))

	name, _, seqID, err := in.ReadMessageBegin()
	testutil.RequireNoError(t, err, "first ReadMessageBegin")
	testutil.RequireEqual(t, name, "first", "first name")
	testutil.RequireEqual(t, seqID, int32(1), "first seq id")
	testutil.RequireNoError(t, Skip(in, TypeStruct), "skip first args")
	testutil.RequireNoError(t, in.ReadMessageEnd(), "first ReadMessageEnd")

	name, _, seqID, err = in.ReadMessageBegin()
	testutil.RequireNoError(t, err, "second ReadMessageBegin")
	testutil.RequireEqual(t, name, "second", "second name")
	testutil.RequireEqual(t, seqID, int32(2), "second seq id")
	testutil.RequireNoError(t, Skip(in, TypeStruct), "skip second args")
	testutil.RequireNoError(t, in.ReadMessageEnd(), "second ReadMessageEnd")
}

func TestJSONRPCRoundTripAllTypes(t *testing.T) {
	buffer := transport.NewMemoryBuffer()
	writer := NewJSONRPCProtocol(buffer)

	testutil.RequireNoError(t, writer.WriteMessageBegin("everything", MessageReply, 3), "WriteMessageBegin")
	writeRichStruct(t, writer)
	testutil.RequireNoError(t, writer.WriteMessageEnd(), "WriteMessageEnd")

	reader := NewJSONRPCProtocol(transport.NewMemoryBufferString(buffer.String()))
	name, typ, seqID, err := reader.ReadMessageBegin()
	testutil.RequireNoError(t, err, "ReadMessageBegin")
	testutil.RequireEqual(t, name, "", "reply name")
	testutil.RequireEqual(t, typ, MessageReply, "type")
	testutil.RequireEqual(t, seqID, int32(3), "seq id")
	readRichStruct(t, reader)
	testutil.RequireNoError(t, reader.ReadMessageEnd(), "ReadMessageEnd")
	testutil.RequireEqual(t, reader.transStream.depth(), 0, "transport depth")
	testutil.RequireEqual(t, reader.buf.Len(), 0, "payload buffer cleared")
}

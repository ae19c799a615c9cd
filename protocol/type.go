// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import "strconv"

// Type identifies the kind of a value on the wire. The numeric values
// follow the Thrift binary protocol so generated code can pass them
// through unchanged.
type Type byte

const (
	TypeStop   Type = 0
	TypeVoid   Type = 1
	TypeBool   Type = 2
	TypeByte   Type = 3
	TypeDouble Type = 4
	TypeI16    Type = 6
	TypeI32    Type = 8
	TypeI64    Type = 10
	TypeString Type = 11
	TypeStruct Type = 12
	TypeMap    Type = 13
	TypeSet    Type = 14
	TypeList   Type = 15
)

func (t Type) String() string {
	switch t {
	case TypeStop:
		return "stop"
	case TypeVoid:
		return "void"
	case TypeBool:
		return "bool"
	case TypeByte:
		return "byte"
	case TypeDouble:
		return "double"
	case TypeI16:
		return "i16"
	case TypeI32:
		return "i32"
	case TypeI64:
		return "i64"
	case TypeString:
		return "string"
	case TypeStruct:
		return "struct"
	case TypeMap:
		return "map"
	case TypeSet:
		return "set"
	case TypeList:
		return "list"
	default:
		return "unknown"
	}
}

// MessageType identifies the role of an RPC message envelope.
type MessageType int32

const (
	MessageCall      MessageType = 1
	MessageReply     MessageType = 2
	MessageException MessageType = 3
	MessageOneway    MessageType = 4
)

func (m MessageType) String() string {
	switch m {
	case MessageCall:
		return "call"
	case MessageReply:
		return "reply"
	case MessageException:
		return "exception"
	case MessageOneway:
		return "oneway"
	default:
		return "unknown"
	}
}

// Wire tags: the short strings that identify a value's type in the
// JSON encodings. Exact spellings are part of the wire contract.
const (
	tagBool   = "tf"
	tagByte   = "i8"
	tagI16    = "i16"
	tagI32    = "i32"
	tagI64    = "i64"
	tagDouble = "dbl"
	tagString = "str"
	tagStruct = "rec"
	tagMap    = "map"
	tagList   = "lst"
	tagSet    = "set"
)

// typeTag returns the wire tag for t.
func typeTag(t Type) (string, error) {
	switch t {
	case TypeBool:
		return tagBool, nil
	case TypeByte:
		return tagByte, nil
	case TypeI16:
		return tagI16, nil
	case TypeI32:
		return tagI32, nil
	case TypeI64:
		return tagI64, nil
	case TypeDouble:
		return tagDouble, nil
	case TypeString:
		return tagString, nil
	case TypeStruct:
		return tagStruct, nil
	case TypeMap:
		return tagMap, nil
	case TypeSet:
		return tagSet, nil
	case TypeList:
		return tagList, nil
	default:
		return "", &Error{Kind: KindNotImplemented, Message: "unrecognized type " + t.String()}
	}
}

// typeForTag maps a wire tag back to its Type. Dispatch is on the
// first two bytes; every valid tag is at least two bytes long.
func typeForTag(tag string) (Type, error) {
	if len(tag) > 1 {
		switch tag[0] {
		case 'd':
			return TypeDouble, nil
		case 'i':
			switch tag[1] {
			case '8':
				return TypeByte, nil
			case '1':
				return TypeI16, nil
			case '3':
				return TypeI32, nil
			case '6':
				return TypeI64, nil
			}
		case 'l':
			return TypeList, nil
		case 'm':
			return TypeMap, nil
		case 'r':
			return TypeStruct, nil
		case 's':
			switch tag[1] {
			case 't':
				return TypeString, nil
			case 'e':
				return TypeSet, nil
			}
		case 't':
			return TypeBool, nil
		}
	}
	return TypeStop, &Error{Kind: KindNotImplemented, Message: "unrecognized type tag " + strconv.Quote(tag)}
}

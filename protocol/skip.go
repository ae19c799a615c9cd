// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

// maxSkipDepth bounds recursion when discarding nested values, so a
// hostile message cannot exhaust the stack.
const maxSkipDepth = 64

// Skip consumes and discards one value of the given type through the
// read surface of p, leaving the stream positioned after the value.
// Servers use it to drop unknown fields; the inspection tool uses it
// to step over whole payloads.
func Skip(p Protocol, typ Type) error {
	return skip(p, typ, maxSkipDepth)
}

func skip(p Protocol, typ Type, depth int) error {
	if depth <= 0 {
		return invalidDataf("skip depth limit exceeded")
	}
	switch typ {
	case TypeBool:
		_, err := p.ReadBool()
		return err
	case TypeByte:
		_, err := p.ReadByte()
		return err
	case TypeI16:
		_, err := p.ReadI16()
		return err
	case TypeI32:
		_, err := p.ReadI32()
		return err
	case TypeI64:
		_, err := p.ReadI64()
		return err
	case TypeDouble:
		_, err := p.ReadDouble()
		return err
	case TypeString:
		_, err := p.ReadString()
		return err
	case TypeStruct:
		if err := p.ReadStructBegin(); err != nil {
			return err
		}
		for {
			fieldType, _, err := p.ReadFieldBegin()
			if err != nil {
				return err
			}
			if fieldType == TypeStop {
				break
			}
			if err := skip(p, fieldType, depth-1); err != nil {
				return err
			}
			if err := p.ReadFieldEnd(); err != nil {
				return err
			}
		}
		return p.ReadStructEnd()
	case TypeMap:
		keyType, valueType, size, err := p.ReadMapBegin()
		if err != nil {
			return err
		}
		for i := 0; i < size; i++ {
			if err := skip(p, keyType, depth-1); err != nil {
				return err
			}
			if err := skip(p, valueType, depth-1); err != nil {
				return err
			}
		}
		return p.ReadMapEnd()
	case TypeList:
		elemType, size, err := p.ReadListBegin()
		if err != nil {
			return err
		}
		for i := 0; i < size; i++ {
			if err := skip(p, elemType, depth-1); err != nil {
				return err
			}
		}
		return p.ReadListEnd()
	case TypeSet:
		elemType, size, err := p.ReadSetBegin()
		if err != nil {
			return err
		}
		for i := 0; i < size; i++ {
			if err := skip(p, elemType, depth-1); err != nil {
				return err
			}
		}
		return p.ReadSetEnd()
	default:
		return &Error{Kind: KindNotImplemented, Message: "cannot skip type " + typ.String()}
	}
}

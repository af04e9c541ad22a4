// Package codec provides the value encodings used by typed namespace scans.
package codec

import (
	"bytes"
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
	jsoniter "github.com/json-iterator/go"
)

// Codec encodes and decodes values stored under a namespace.
type Codec interface {
	Encode(value interface{}) ([]byte, error)
	Decode(data []byte, value interface{}) error
}

var (
	// JSON encodes values as JSON. It is the default codec.
	JSON Codec = jsonCodec{}
	// CBOR encodes values as RFC 8949 CBOR.
	CBOR Codec = cborCodec{}
	// Binary encodes fixed-size values (numbers, fixed-size arrays and structs
	// of them) as little-endian bytes.
	Binary Codec = binaryCodec{}
)

// |||||| JSON ||||||

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonCodec struct{}

func (jsonCodec) Encode(value interface{}) ([]byte, error) { return jsonAPI.Marshal(value) }

func (jsonCodec) Decode(data []byte, value interface{}) error {
	return jsonAPI.Unmarshal(data, value)
}

// |||||| CBOR ||||||

type cborCodec struct{}

func (cborCodec) Encode(value interface{}) ([]byte, error) { return cbor.Marshal(value) }

func (cborCodec) Decode(data []byte, value interface{}) error { return cbor.Unmarshal(data, value) }

// |||||| BINARY ||||||

type binaryCodec struct{}

func (binaryCodec) Encode(value interface{}) ([]byte, error) {
	size := binary.Size(value)
	if size < 0 {
		return nil, errors.Newf("[keyspace.codec] - %T is not a fixed-size value", value)
	}
	b := bytes.NewBuffer(make([]byte, 0, size))
	err := binary.Write(b, binary.LittleEndian, value)
	return b.Bytes(), err
}

func (binaryCodec) Decode(data []byte, value interface{}) error {
	size := binary.Size(value)
	if size < 0 {
		return errors.Newf("[keyspace.codec] - %T is not a fixed-size value", value)
	}
	if size != len(data) {
		return errors.Newf("[keyspace.codec] - expected %d bytes for %T, got %d", size, value, len(data))
	}
	return binary.Read(bytes.NewReader(data), binary.LittleEndian, value)
}

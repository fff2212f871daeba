package codec_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/ripkitten-co/idpcodec/codec"
)

func BenchmarkMarshal_Small(b *testing.B) {
	req := &poolRequest{UserPoolId: ptr("us-east-1_abc"), Username: ptr("alice")}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = codec.Marshal(poolRequestTable, req)
	}
}

func BenchmarkMarshal_Full(b *testing.B) {
	req := fullRequest()
	b.ReportAllocs()
	for b.Loop() {
		_, _ = codec.Marshal(poolRequestTable, req)
	}
}

func BenchmarkMarshalTo_Full(b *testing.B) {
	req := fullRequest()
	b.ReportAllocs()
	for b.Loop() {
		_ = codec.MarshalTo(io.Discard, poolRequestTable, req)
	}
}

func BenchmarkUnmarshal_Small(b *testing.B) {
	data := []byte(`{"UserPoolId":"us-east-1_abc","Username":"alice"}`)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = codec.Unmarshal(poolRequestTable, data)
	}
}

func BenchmarkUnmarshal_Full(b *testing.B) {
	data, _ := codec.Marshal(poolRequestTable, fullRequest())
	b.ReportAllocs()
	for b.Loop() {
		_, _ = codec.Unmarshal(poolRequestTable, data)
	}
}

func BenchmarkUnmarshalFrom_Full(b *testing.B) {
	data, _ := codec.Marshal(poolRequestTable, fullRequest())
	b.ReportAllocs()
	for b.Loop() {
		_, _ = codec.UnmarshalFrom(bytes.NewReader(data), poolRequestTable)
	}
}

func BenchmarkUnmarshal_UnknownFields(b *testing.B) {
	data := []byte(`{"UserPoolId":"p","Extra":{"deep":[1,2,3,{"x":"y"}]},"More":"ignored","Username":"alice"}`)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = codec.Unmarshal(poolRequestTable, data)
	}
}

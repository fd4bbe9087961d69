package qr

import (
	"bytes"
	"strings"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestEncodeProducesPNG(t *testing.T) {
	out, err := Encode("BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Jane Doe\r\nEND:VCARD")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.HasPrefix(out, pngMagic) {
		t.Fatalf("expected PNG signature, got % x", out[:8])
	}
}

func TestEncodeDataURL(t *testing.T) {
	out, err := EncodeDataURL("hello")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(out, "data:image/png;base64,") {
		t.Fatalf("unexpected prefix: %q", out[:30])
	}
}

func TestEncodeOversizedPayloadFails(t *testing.T) {
	// Far beyond what any QR version holds at the highest EC level.
	if _, err := Encode(strings.Repeat("x", 5000)); err == nil {
		t.Fatal("expected oversized payload to fail, not truncate")
	}
}

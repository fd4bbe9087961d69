package vcard

import (
	"strings"
	"testing"

	"click2card/internal/domain"
)

func fullCard() domain.BusinessCard {
	return domain.BusinessCard{
		FullName:     "Jane Doe",
		BusinessName: "Doe Designs",
		Phone:        "+91 98765 43210",
		WhatsApp:     "+91 98765 43210",
		Email:        "jane@doedesigns.in",
		City:         "Pune",
		Website:      "https://doedesigns.in",
		TemplateID:   "modern-blue",
	}
}

func TestEncodeFormat(t *testing.T) {
	out := Encode(fullCard())

	if !strings.HasPrefix(out, "BEGIN:VCARD\r\nVERSION:3.0\r\n") {
		t.Fatalf("bad preamble: %q", out[:30])
	}
	if !strings.HasSuffix(out, "\r\nEND:VCARD") {
		t.Fatalf("missing END terminator: %q", out)
	}
	if strings.Contains(strings.ReplaceAll(out, "\r\n", ""), "\n") {
		t.Fatal("expected CRLF-only line endings")
	}

	want := []string{
		"FN:Jane Doe",
		"ORG:Doe Designs",
		"TEL;TYPE=CELL:+91 98765 43210",
		"EMAIL:jane@doedesigns.in",
		"TEL;TYPE=WORK:+91 98765 43210",
		"URL:https://doedesigns.in",
		"ADR;TYPE=WORK:;;Pune;;;;",
	}
	for _, line := range want {
		if !strings.Contains(out, "\r\n"+line+"\r\n") {
			t.Errorf("missing line %q in:\n%s", line, out)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	card := fullCard()
	if Encode(card) != Encode(card) {
		t.Fatal("expected byte-identical output for identical input")
	}
}

func TestRoundTrip(t *testing.T) {
	card := fullCard()
	got, err := Parse(Encode(card))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.FullName != card.FullName || got.BusinessName != card.BusinessName ||
		got.Phone != card.Phone || got.Email != card.Email {
		t.Fatalf("required fields did not round-trip: %+v", got)
	}
	if got.WhatsApp != card.WhatsApp || got.Website != card.Website || got.City != card.City {
		t.Fatalf("optional fields did not round-trip: %+v", got)
	}
}

func TestOptionalFieldsOmittedWhenAbsent(t *testing.T) {
	card := fullCard()
	card.WhatsApp = ""
	card.Website = ""
	card.City = ""

	out := Encode(card)
	for _, marker := range []string{"TEL;TYPE=WORK", "URL:", "ADR;"} {
		if strings.Contains(out, marker) {
			t.Errorf("expected %q to be omitted, got:\n%s", marker, out)
		}
	}

	// Absence must be preserved through a round trip, not turned into "".
	got, err := Parse(out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.WhatsApp != "" || got.Website != "" || got.City != "" {
		t.Fatalf("expected absent optionals to stay absent: %+v", got)
	}
}

func TestParseRejectsNonVCard(t *testing.T) {
	for _, in := range []string{"", "hello", "BEGIN:VCARD\r\nVERSION:3.0"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

package vcard

import (
	"fmt"
	"strings"

	"click2card/internal/domain"
)

// vCard 3.0 encoding for phone contact importers. The format contract is
// byte-exact: CRLF line endings, BEGIN:VCARD/VERSION:3.0 opening,
// END:VCARD terminator.

// Encode renders the card as a vCard record. Optional fields are omitted
// entirely when absent, never emitted with an empty value. Output is
// deterministic for identical input.
func Encode(card domain.BusinessCard) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + card.FullName,
		"ORG:" + card.BusinessName,
		"TEL;TYPE=CELL:" + card.Phone,
		"EMAIL:" + card.Email,
	}
	if card.WhatsApp != "" {
		lines = append(lines, "TEL;TYPE=WORK:"+card.WhatsApp)
	}
	if card.Website != "" {
		lines = append(lines, "URL:"+card.Website)
	}
	if card.City != "" {
		lines = append(lines, fmt.Sprintf("ADR;TYPE=WORK:;;%s;;;;", card.City))
	}
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\r\n")
}

// Parse is the inverse of Encode for the line kinds Encode emits. Lines it
// does not recognize are ignored.
func Parse(s string) (domain.BusinessCard, error) {
	lines := strings.Split(s, "\r\n")
	if len(lines) < 3 || lines[0] != "BEGIN:VCARD" || lines[len(lines)-1] != "END:VCARD" {
		return domain.BusinessCard{}, fmt.Errorf("not a vCard record")
	}
	var card domain.BusinessCard
	for _, line := range lines[1 : len(lines)-1] {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return domain.BusinessCard{}, fmt.Errorf("malformed vCard line %q", line)
		}
		switch key {
		case "FN":
			card.FullName = value
		case "ORG":
			card.BusinessName = value
		case "TEL;TYPE=CELL":
			card.Phone = value
		case "TEL;TYPE=WORK":
			card.WhatsApp = value
		case "EMAIL":
			card.Email = value
		case "URL":
			card.Website = value
		case "ADR;TYPE=WORK":
			// Structured address: the city sits in the third component.
			parts := strings.Split(value, ";")
			if len(parts) > 2 {
				card.City = parts[2]
			}
		}
	}
	return card, nil
}

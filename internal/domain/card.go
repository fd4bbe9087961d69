package domain

import "errors"

// Core domain models. The card record is built once from the request body,
// consumed by the encoders and the composer, and never persisted here.

// BusinessCard is the contact/business data a customer submits.
type BusinessCard struct {
	FullName     string
	BusinessName string
	Phone        string
	WhatsApp     string
	Email        string
	City         string
	Website      string
	Instagram    string
	GoogleMaps   string
	TemplateID   string
	PhotoDataURL string
}

// Validate checks that required fields are present. Anything beyond presence
// is the client's responsibility.
func (c BusinessCard) Validate() error {
	switch {
	case c.FullName == "":
		return errors.New("fullName is required")
	case c.BusinessName == "":
		return errors.New("businessName is required")
	case c.Phone == "":
		return errors.New("phone is required")
	case c.Email == "":
		return errors.New("email is required")
	case c.TemplateID == "":
		return errors.New("templateId is required")
	}
	return nil
}

// PaymentOrder is the provider-side order created ahead of checkout.
type PaymentOrder struct {
	ID       string
	Amount   int64 // smallest currency unit (paise)
	Currency string
}

// PaymentProof carries the provider callback fields the client posts back
// after completing checkout.
type PaymentProof struct {
	OrderID   string
	PaymentID string
	Signature string
}

// Bundle holds the three fulfillment artifacts. A bundle only ever exists
// complete: either all three were generated or the order failed earlier.
type Bundle struct {
	PDF []byte
	QR  []byte
	VCF []byte
}

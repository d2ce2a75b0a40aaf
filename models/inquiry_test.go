package models

import (
	"testing"
)

func TestValidateInquiryAcceptsMinimalPayload(t *testing.T) {
	inquiry, err := ValidateInquiry(InquiryRequest{
		ContactName: "Jane Doe",
		Email:       "jane@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if inquiry.ContactName != "Jane Doe" || inquiry.Email != "jane@example.com" {
		t.Fatalf("inquiry = %+v", inquiry)
	}
	if inquiry.Country != "" || inquiry.Products != nil {
		t.Fatalf("optional fields defaulted: %+v", inquiry)
	}
}

func TestValidateInquiryPassesValuesThroughUntouched(t *testing.T) {
	request := InquiryRequest{
		CompanyName:   "  Fresh Farms Ltd ",
		ContactName:   " Jane  Doe ",
		Email:         "JANE@Example.Com",
		Phone:         "+254 700 000 000",
		Country:       "kenya",
		InquiryType:   "something-free-form",
		Products:      []string{"Mango", "mango", "MANGO"},
		Message:       "interested in exports",
		PreferredPort: "Mombasa",
	}
	inquiry, err := ValidateInquiry(request)
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	// No trimming, case folding or deduplication.
	if inquiry.CompanyName != request.CompanyName ||
		inquiry.ContactName != request.ContactName ||
		inquiry.Email != request.Email ||
		inquiry.Country != request.Country ||
		inquiry.InquiryType != request.InquiryType {
		t.Fatalf("values were normalized: %+v", inquiry)
	}
	if len(inquiry.Products) != 3 {
		t.Fatalf("products = %v, want all 3 entries", inquiry.Products)
	}
}

func TestValidateInquiryRequiredFields(t *testing.T) {
	cases := []struct {
		name      string
		request   InquiryRequest
		wantField string
	}{
		{"missing contact_name", InquiryRequest{Email: "jane@example.com"}, "contact_name"},
		{"missing email", InquiryRequest{ContactName: "Jane Doe"}, "email"},
		{"malformed email", InquiryRequest{ContactName: "Jane Doe", Email: "not-an-email"}, "email"},
		{"email without domain", InquiryRequest{ContactName: "Jane Doe", Email: "jane@"}, "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateInquiry(tc.request)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			found := false
			for _, field := range err.Fields {
				if field.Field == tc.wantField {
					found = true
					if field.Message == "" {
						t.Fatalf("field %q has no message", field.Field)
					}
				}
			}
			if !found {
				t.Fatalf("error %v does not name field %q", err, tc.wantField)
			}
		})
	}
}

func TestValidateInquiryReportsAllFailingFields(t *testing.T) {
	_, err := ValidateInquiry(InquiryRequest{})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if len(err.Fields) != 2 {
		t.Fatalf("fields = %v, want contact_name and email", err.Fields)
	}
}

package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Inquiry is one contact-form submission, stored as-is in the "inquiry"
// collection. Optional fields stay unset when not provided.
type Inquiry struct {
	CompanyName   string   `json:"company_name,omitempty" bson:"company_name,omitempty"`
	ContactName   string   `json:"contact_name" bson:"contact_name"`
	Email         string   `json:"email" bson:"email"`
	Phone         string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Country       string   `json:"country,omitempty" bson:"country,omitempty"`
	InquiryType   string   `json:"inquiry_type,omitempty" bson:"inquiry_type,omitempty"`
	Products      []string `json:"products,omitempty" bson:"products,omitempty"`
	Message       string   `json:"message,omitempty" bson:"message,omitempty"`
	PreferredPort string   `json:"preferred_port,omitempty" bson:"preferred_port,omitempty"`
}

// InquiryRequest is the creation payload. inquiry_type, country and
// preferred_port are intentionally free-form text.
type InquiryRequest struct {
	CompanyName   string   `json:"company_name"`
	ContactName   string   `json:"contact_name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	Phone         string   `json:"phone"`
	Country       string   `json:"country"`
	InquiryType   string   `json:"inquiry_type"`
	Products      []string `json:"products"`
	Message       string   `json:"message"`
	PreferredPort string   `json:"preferred_port"`
}

var validate = validator.New()

func init() {
	// Report json field names in validation errors, not Go field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// ValidateInquiry checks the request against the schema and returns the
// normalized document, or a field-level validation error. Values are
// passed through untouched: no trimming, case folding or deduplication.
func ValidateInquiry(request InquiryRequest) (Inquiry, *ValidationError) {
	if err := validate.Struct(request); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return Inquiry{}, &ValidationError{Fields: []FieldError{{Field: "request", Message: err.Error()}}}
		}

		fields := make([]FieldError, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields = append(fields, FieldError{
				Field:   fieldError.Field(),
				Message: validationMessage(fieldError),
			})
		}
		return Inquiry{}, &ValidationError{Fields: fields}
	}

	return Inquiry{
		CompanyName:   request.CompanyName,
		ContactName:   request.ContactName,
		Email:         request.Email,
		Phone:         request.Phone,
		Country:       request.Country,
		InquiryType:   request.InquiryType,
		Products:      request.Products,
		Message:       request.Message,
		PreferredPort: request.PreferredPort,
	}, nil
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %s validation", fieldError.Tag())
	}
}

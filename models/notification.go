package models

import "time"

const InquiryReceivedNotification = "inquiry_received"

// InquiryNotification is published to the notification channel when a
// submission is accepted. It deliberately carries no email or phone.
type InquiryNotification struct {
	Type        string    `json:"type"`
	InquiryID   string    `json:"inquiry_id"`
	ContactName string    `json:"contact_name"`
	Country     string    `json:"country,omitempty"`
	DateCreated time.Time `json:"date_created"`
}

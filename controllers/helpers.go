package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"agro-exports-api/configs"
	"agro-exports-api/models"
	"agro-exports-api/responses"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	inquiryCollection = "inquiry"
	defaultListLimit  = 50
)

// DocumentStore is what the inquiry handlers need from the store.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, document interface{}) (primitive.ObjectID, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
}

// Diagnostics is what the /test endpoint needs from the store.
type Diagnostics interface {
	Connected() bool
	DatabaseName() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}

func jsonResponse(rw http.ResponseWriter, code int, body interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	json.NewEncoder(rw).Encode(body)
}

func errorResponse(rw http.ResponseWriter, code int, message, detail string) {
	jsonResponse(rw, code, responses.ErrorResponse{Status: code, Message: message, Detail: detail})
}

func validationErrorResponse(rw http.ResponseWriter, validationErr *models.ValidationError) {
	jsonResponse(rw, http.StatusUnprocessableEntity, responses.ErrorResponse{
		Status:  http.StatusUnprocessableEntity,
		Message: "validation error",
		Errors:  validationErr.Fields,
	})
}

// publishInquiryNotification pushes an accepted inquiry onto the
// notification channel. Best effort: failures are logged, never
// surfaced to the submitter.
func publishInquiryNotification(client *redis.Client, inquiryID string, inquiry models.Inquiry) {
	if client == nil {
		return
	}
	channel := configs.EnvNotificationChannel()
	if channel == "" {
		return
	}

	logger := configs.LogWithContext("controllers", "notify")

	notification := models.InquiryNotification{
		Type:        models.InquiryReceivedNotification,
		InquiryID:   inquiryID,
		ContactName: inquiry.ContactName,
		Country:     inquiry.Country,
		DateCreated: time.Now(),
	}
	payload, err := json.Marshal(notification)
	if err != nil {
		logger.WithError(err).Error("Error marshaling inquiry notification")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Publish(ctx, channel, payload).Err(); err != nil {
		logger.WithError(err).Error("Error publishing inquiry notification")
	}
}

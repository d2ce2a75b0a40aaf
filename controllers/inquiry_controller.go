package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"agro-exports-api/models"
	"agro-exports-api/responses"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateInquiry handles POST /inquiries: validate, persist, return the
// generated id. notifier may be nil when Redis is not configured.
func CreateInquiry(store DocumentStore, notifier *redis.Client) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var request models.InquiryRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				validationErrorResponse(rw, &models.ValidationError{Fields: []models.FieldError{{
					Field:   typeErr.Field,
					Message: fmt.Sprintf("must be of type %s", typeErr.Type),
				}}})
				return
			}
			errorResponse(rw, http.StatusBadRequest, "error", "invalid request body: "+err.Error())
			return
		}

		inquiry, validationErr := models.ValidateInquiry(request)
		if validationErr != nil {
			validationErrorResponse(rw, validationErr)
			return
		}

		id, err := store.CreateDocument(ctx, inquiryCollection, inquiry)
		if err != nil {
			errorResponse(rw, http.StatusInternalServerError, "error", err.Error())
			return
		}

		publishInquiryNotification(notifier, id.Hex(), inquiry)

		jsonResponse(rw, http.StatusCreated, responses.InquiryCreatedResponse{
			ID:     id.Hex(),
			Status: "received",
		})
	}
}

// ListInquiries handles GET /inquiries with optional country, product
// and limit query parameters. Listing output is public, so email and
// phone are stripped from every item.
func ListInquiries(store DocumentStore) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		query := r.URL.Query()

		limit := int64(defaultListLimit)
		if raw := query.Get("limit"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				validationErrorResponse(rw, &models.ValidationError{Fields: []models.FieldError{{
					Field:   "limit",
					Message: "must be an integer",
				}}})
				return
			}
			limit = parsed
		}

		filter := buildInquiryFilter(query.Get("country"), query.Get("product"))

		documents, err := store.GetDocuments(ctx, inquiryCollection, filter, limit)
		if err != nil {
			errorResponse(rw, http.StatusInternalServerError, "error", err.Error())
			return
		}

		items := make([]map[string]interface{}, 0, len(documents))
		for _, document := range documents {
			items = append(items, presentInquiry(document))
		}

		jsonResponse(rw, http.StatusOK, responses.InquiryListResponse{
			Items: items,
			Count: len(items),
		})
	}
}

// buildInquiryFilter constructs the query filter: exact match on
// country, membership match on the products array. Both optional,
// combined with AND.
func buildInquiryFilter(country, product string) bson.M {
	filter := bson.M{}
	if country != "" {
		filter["country"] = country
	}
	if product != "" {
		filter["products"] = bson.M{"$in": []string{product}}
	}
	return filter
}

// presentInquiry shapes a stored document for public listing: PII
// redacted, opaque _id replaced by its hex string form under "id".
func presentInquiry(document bson.M) map[string]interface{} {
	item := make(map[string]interface{}, len(document))
	for key, value := range document {
		if key == "email" || key == "phone" {
			continue
		}
		item[key] = value
	}

	if rawID, ok := item["_id"]; ok {
		delete(item, "_id")
		if objectID, ok := rawID.(primitive.ObjectID); ok {
			item["id"] = objectID.Hex()
		} else {
			item["id"] = fmt.Sprintf("%v", rawID)
		}
	}
	return item
}

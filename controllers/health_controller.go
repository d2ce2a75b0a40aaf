package controllers

import (
	"context"
	"net/http"
	"time"

	"agro-exports-api/configs"
	"agro-exports-api/responses"
)

// Root handles GET /.
func Root() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		jsonResponse(rw, http.StatusOK, responses.MessageResponse{
			Message: "Agro Exports Backend is running",
		})
	}
}

// TestDatabase handles GET /test. It reports status and always answers
// 200: internal failures become descriptive text inside the fields
// instead of an HTTP error.
func TestDatabase(diagnostics Diagnostics) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		response := responses.DiagnosticsResponse{
			Backend:          "✅ Running",
			Database:         "❌ Not Available",
			ConnectionStatus: "Not Connected",
			Collections:      []string{},
		}

		if diagnostics == nil || !diagnostics.Connected() {
			response.Database = "⚠️  Available but not initialized"
			jsonResponse(rw, http.StatusOK, response)
			return
		}

		response.Database = "✅ Available"
		if configs.EnvMongoURI() != "" {
			response.DatabaseURL = "✅ Configured"
		} else {
			response.DatabaseURL = "❌ Not Set"
		}
		response.DatabaseName = diagnostics.DatabaseName()
		if response.DatabaseName == "" {
			response.DatabaseName = "Unknown"
		}
		response.ConnectionStatus = "Connected"

		collections, err := diagnostics.ListCollectionNames(ctx)
		if err != nil {
			response.Database = "⚠️  Connected but Error: " + truncateError(err)
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			if collections == nil {
				collections = []string{}
			}
			response.Collections = collections
			response.Database = "✅ Connected & Working"
		}

		jsonResponse(rw, http.StatusOK, response)
	}
}

// truncateError keeps diagnostic strings short enough for a status
// field.
func truncateError(err error) string {
	message := err.Error()
	if len(message) > 50 {
		message = message[:50]
	}
	return message
}

package routes

import (
	"agro-exports-api/controllers"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
)

func InquiryRoutes(router *mux.Router, store controllers.DocumentStore, notifier *redis.Client) {
	router.HandleFunc("/inquiries", controllers.CreateInquiry(store, notifier)).Methods("POST")
	router.HandleFunc("/inquiries", controllers.ListInquiries(store)).Methods("GET")
}

package routes

import (
	"agro-exports-api/controllers"

	"github.com/gorilla/mux"
)

func HealthRoutes(router *mux.Router, diagnostics controllers.Diagnostics) {
	router.HandleFunc("/", controllers.Root()).Methods("GET")
	router.HandleFunc("/test", controllers.TestDatabase(diagnostics)).Methods("GET")
}

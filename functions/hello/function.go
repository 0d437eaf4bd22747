// Package hello serves the greeting and health check as HTTP Cloud Functions,
// for deployments that run without the standalone server.
package hello

import (
	"encoding/json"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// ServiceName matches the name reported by the standalone server.
const ServiceName = "hello-world"

func init() {
	functions.HTTP("HelloWorld", helloWorld)
	functions.HTTP("HealthCheck", healthCheck)
}

// Greeting is the HelloWorld response body.
type Greeting struct {
	Message string `json:"message"`
}

// Health is the HealthCheck response body.
type Health struct {
	ServiceName string `json:"service_name"`
	Status      string `json:"status"`
}

func helloWorld(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, Greeting{Message: "hello-world"})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, Health{ServiceName: ServiceName, Status: "ok"})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

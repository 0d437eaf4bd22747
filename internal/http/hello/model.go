package hello

// Message is the fixed greeting returned by GET /hello-world.
const Message = "hello-world"

// Data models the response payload for the greeting endpoint.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"hello-world"`
}

// Output is the response wrapper for the greeting endpoint.
type Output struct {
	Body Data
}

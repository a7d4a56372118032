package hello

// GreetingMessage is the fixed text returned by GET /hello.
const GreetingMessage = "Hello, World!"

// Data models the response payload for the hello endpoint.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello, World!"`
}

// Greeting returns the fixed greeting payload.
func Greeting() Data {
	return Data{Message: GreetingMessage}
}

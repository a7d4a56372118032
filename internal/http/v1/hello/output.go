package hello

// GetOutput is the GET /hello response. Huma writes it with status 200 and
// Content-Type application/json.
type GetOutput struct {
	Body Data
}

package fixtures

// ResponseMetadata carries the fixed timestamps and version of the canned
// API response.
type ResponseMetadata struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Version   string `json:"version"`
}

// ResponseData is the payload of the canned API response.
type ResponseData struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Metadata    ResponseMetadata `json:"metadata"`
}

// Response is a canned success envelope simulating an external API result.
// Never mutated after construction.
type Response struct {
	Status  string       `json:"status"`
	Data    ResponseData `json:"data"`
	Message string       `json:"message"`
}

// APIResponse returns the canned API response. Every call returns an
// identical value.
func APIResponse() Response {
	return Response{
		Status: "success",
		Data: ResponseData{
			ID:          123,
			Name:        "Test Item",
			Description: "This is a test item",
			Metadata: ResponseMetadata{
				CreatedAt: "2024-01-01T00:00:00Z",
				UpdatedAt: "2024-01-02T00:00:00Z",
				Version:   "1.0.0",
			},
		},
		Message: "Request successful",
	}
}

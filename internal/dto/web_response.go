package dto

// WebResponse is a generic API response structure
type WebResponse[T any] struct {
	Data   T             `json:"data"`             // Holds the main response data
	Paging *PageMetadata `json:"paging,omitempty"` // Pagination details (if applicable)
}

// PageMetadata contains pagination details
type PageMetadata struct {
	Limit  int `json:"limit"`  // Requested page size
	Offset int `json:"offset"` // Requested page start
	Count  int `json:"count"`  // Number of items in this page
}

package dto

// SuccessResponse is the standard envelope for mutating non-list
// endpoints.
type SuccessResponse struct {
	Success bool  `json:"success"`
	ID      *uint `json:"id,omitempty"`
}

func Success() SuccessResponse {
	return SuccessResponse{Success: true}
}

func SuccessWithID(id uint) SuccessResponse {
	return SuccessResponse{Success: true, ID: &id}
}

// SignedURLResponse wraps a time-limited download URL.
type SignedURLResponse struct {
	URL string `json:"url"`
}

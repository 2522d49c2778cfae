package dto

// Envelope is the uniform controller response shape.
type Envelope struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Data    any    `json:"data,omitempty"`
}

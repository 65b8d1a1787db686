package contact

// SubmitRequest is the public contact form payload. The form sends one
// "name" field; the service splits it into first/last for storage.
type SubmitRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	ServiceType string `json:"service_type"`
	Subject     string `json:"subject"`
	Message     string `json:"message" binding:"required"`
}

type UpdateReadRequest struct {
	IsRead bool `json:"is_read"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

package dto

// CreateCustomerRequest body para POST /customers.
// DNI debe tener exactamente 8 dígitos.
type CreateCustomerRequest struct {
	DNI      int64  `json:"dni"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID       int64  `json:"id"`
	DNI      int64  `json:"dni"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
}

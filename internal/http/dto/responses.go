package dto

type ErrorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"` // set for validation failures
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type AuthResponse struct {
	Token   string `json:"token"`
	Profile any    `json:"profile"`
	Wallet  any    `json:"wallet,omitempty"`
}

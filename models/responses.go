package models

// Response is the JSON envelope returned by every API endpoint.
type Response struct {
	// Success reports whether the request was handled without error.
	Success bool `json:"success"`

	// Message is a human-readable (localized) description of the outcome.
	Message string `json:"message,omitempty"`

	// Data carries the payload of successful responses.
	Data any `json:"data,omitempty"`

	// Errors holds field-level validation messages keyed by field name.
	Errors map[string]string `json:"errors,omitempty"`

	// Detail carries the underlying error text; only filled in development mode.
	Detail string `json:"detail,omitempty"`
}

// AuthResponse is returned by login, register and refresh.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
	User      User  `json:"user"`
}

// HealthResponse describes the running build.
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}

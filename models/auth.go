package models

// Session statuses returned by the server's /me endpoint.
const (
	AuthStatusOK         = "OK"
	AuthStatusNewInstall = "NEW_INSTALL"
	AuthStatusError      = "error"
)

// Error codes of the /me endpoint that drive navigation.
const (
	AuthCodeNotLoggedIn = "HTTP004"
	AuthCodeMFARequired = "HTTP006"
	AuthCodeMFASetup    = "HTTP007"
)

// AuthResponse is the session-check envelope.
type AuthResponse struct {
	Status  string `json:"status" example:"error"`
	Code    string `json:"code,omitempty" example:"HTTP004"`
	Message string `json:"message,omitempty"`
}

// LoginStatusResponse is what the console API answers for a login-status check.
type LoginStatusResponse struct {
	Result string `json:"result" example:"/resios-ui/login?redirect=/resios-ui/"`
	OK     bool   `json:"ok"`
}

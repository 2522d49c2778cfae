package dto

// LoginRequest payload for POST /api/auth/login.
type LoginRequest struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe string `json:"rememberMe" form:"rememberMe"`
}

// LoginResponse answers the login attempt. Field-level error flags are only
// present when set, matching what the form UI inspects.
type LoginResponse struct {
	Success              bool             `json:"success"`
	RedirectURL          string           `json:"redirectUrl,omitempty"`
	User                 *AccountResponse `json:"user,omitempty"`
	EmailError           bool             `json:"emailError,omitempty"`
	EmailErrorMessage    string           `json:"emailErrorMessage,omitempty"`
	PasswordError        bool             `json:"passwordError,omitempty"`
	PasswordErrorMessage string           `json:"passwordErrorMessage,omitempty"`
	ErrorMessage         string           `json:"errorMessage,omitempty"`
}

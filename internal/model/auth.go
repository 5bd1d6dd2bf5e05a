package model

// RegisterParams holds registration input.
type RegisterParams struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// RegisterResult is the created account and the activation token issued for it.
type RegisterResult struct {
	Account Account
	Token   string
}

// ResetParams holds password reset confirmation input.
type ResetParams struct {
	UID             string
	Token           string
	NewPassword     string
	ConfirmPassword string
}

// LoginResult is the authenticated account and its fresh token pair.
type LoginResult struct {
	Account Account
	Tokens  TokenPair
}

package auth

import "time"

// Token settings
const (
	DefaultIssuer   = "questboard"
	DefaultTokenTTL = 7 * 24 * time.Hour
	SigningMethod   = "HS256"
	MinSecretLength = 32
)

// Credential locations
const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
	SessionCookieName   = "session"
)

// Error messages
const (
	ErrMsgMissingToken = "missing session token"
	ErrMsgInvalidToken = "invalid session token"
	ErrMsgExpiredToken = "session expired"
	ErrMsgShortSecret  = "session secret must be at least 32 bytes"
)

package dto

import "time"

// AuthResponse is returned by login, refresh and the Google sign-in exchange.
// The refresh token itself travels in an HTTP-only cookie, never in the body.
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// GoogleSignInRequest carries the ID token obtained by the frontend from Google.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

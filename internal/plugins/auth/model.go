// Package auth implements the single-admin gate protecting the dashboard.
// There are no user accounts: one shared admin credential opens a Redis-
// backed session, carried by an HttpOnly cookie. Every /admin route group
// is wrapped by RequireAdmin.
package auth

import "time"

// Session is the server-side session record stored in Redis. The flat
// shape leaves room for audit fields without a schema change.
type Session struct {
	CreatedAt time.Time `json:"created_at"`
	ClientIP  string    `json:"client_ip"`
}

// LoginRequest carries the admin password from the login form.
type LoginRequest struct {
	Password string `json:"password" form:"password"`
}

// Package common contains shared constants and sentinel errors used across
// Permalist components.
package common

// AuthorizationHeader is the HTTP header carrying the bearer token.
const AuthorizationHeader = "Authorization"

// BearerScheme is the expected authorization scheme.
const BearerScheme = "Bearer"

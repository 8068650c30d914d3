package models

import "github.com/golang-jwt/jwt/v5"

// Claims carries the caller identity minted by the portal's
// authentication layer. ID is the opaque participant identifier this
// subsystem works with; Role distinguishes admins from employees for
// the surrounding portal, not for messaging itself.
type Claims struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	jwt.RegisteredClaims
}

package models

// User is the /api/user/me response. Seed locates the caller's
// encrypted input assets on the CDN.
type User struct {
	Seed int `json:"seed"`
}

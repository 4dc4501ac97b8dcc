package user

// User is a stored account record. The lower-cased email is the identity;
// uniqueness is case-insensitive. The password is stored and compared as
// plaintext, preserving the storefront's simulated-authentication semantics
// (see DESIGN.md) — this is not a real credential system.
type User struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	IsAdmin    bool    `json:"isAdmin,omitempty"`
	IsVerified bool    `json:"isVerified,omitempty"`
	JoinDate   string  `json:"joinDate,omitempty"`
	Orders     int     `json:"orders,omitempty"`
	TotalSpent float64 `json:"totalSpent,omitempty"`
}

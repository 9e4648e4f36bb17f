package identity

// Identity represents the authenticated principal as known to the client.
// It is an opaque snapshot of what the identity service returned: it is
// always replaced wholesale or cleared, never partially updated.
type Identity struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Status    string `json:"status,omitempty"`
}

// DisplayName returns the best human-readable name available.
func (i *Identity) DisplayName() string {
	if i == nil {
		return ""
	}
	switch {
	case i.FirstName != "" && i.LastName != "":
		return i.FirstName + " " + i.LastName
	case i.FirstName != "":
		return i.FirstName
	default:
		return i.Username
	}
}

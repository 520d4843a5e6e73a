package session

// Provider is the origin of the credential behind a session
type Provider string

const (
	ProviderLocal  Provider = "LOCAL"
	ProviderGoogle Provider = "GOOGLE"
)

// Identity is the normalized authenticated-user record used throughout
// the client. It is immutable for the lifetime of a session: profile
// updates produce a replacement Identity, never in-place mutation.
type Identity struct {
	UserID            int64    `json:"userId"`
	Username          string   `json:"username"`
	Email             string   `json:"email"`
	Provider          Provider `json:"provider"`
	Roles             []string `json:"roles"`
	Permissions       []string `json:"permissions"`
	Active            bool     `json:"active"`
	ProfilePictureURL string   `json:"profilePictureUrl,omitempty"`
	Biography         string   `json:"biography,omitempty"`
}

// Clone returns a deep copy so callers can derive a replacement Identity
// without mutating the one observers may still hold.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	c.Roles = append([]string(nil), i.Roles...)
	c.Permissions = append([]string(nil), i.Permissions...)
	return &c
}

// HasRole reports whether the identity carries the given role tag
func (i *Identity) HasRole(role string) bool {
	if i == nil {
		return false
	}
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

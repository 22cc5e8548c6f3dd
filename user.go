package storefront

// UserRecord is the storefront's notion of an account profile. It is always
// replaced wholesale; the API never returns partial profiles.
type UserRecord struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UserUpdate carries the fields of a profile update. Zero-valued fields are
// omitted from the request so the server keeps their current values.
type UserUpdate struct {
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
}

package credentials

// Keys under which the client persists its credentials. The access token and
// the cached user snapshot live in the cookie-scoped store; the refresh token
// lives in the durable store. The split mirrors the two credentials' distinct
// lifetimes.
const (
	KeyAccessToken  = "accessToken"
	KeyUserData     = "userData"
	KeyRefreshToken = "refreshToken"
)

// Store is a scoped key-value store for client credentials. Get returns an
// empty string, not an error, for an absent key-- absence is an ordinary
// state for every credential. No expiry logic is implemented client-side;
// the server rejects stale tokens.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

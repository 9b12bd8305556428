package auth

// OAuthIdentity is the verified subject of an external ID token.
// Subject is stable per provider account; Email is already confirmed by the
// provider.
type OAuthIdentity struct {
	Subject string
	Email   string
}

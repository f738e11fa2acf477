package domain

// AccessToken is an OAuth access token minted by the identity provider. It is
// request-scoped: the gateway never stores or reuses it.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

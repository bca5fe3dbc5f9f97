package domain

// APIConfig is a descriptive record edited from the admin dashboard. Nothing
// enforces these values at runtime.
type APIConfig struct {
	ID           string `json:"id"`
	APIName      string `json:"apiName"`
	EndpointURL  string `json:"endpointUrl"`
	RateLimit    int    `json:"rateLimit"`
	AuthRequired bool   `json:"authRequired"`
	Enabled      bool   `json:"enabled"`
	Description  string `json:"description"`
}

// APIConfigUpdate carries a partial update; nil fields are left untouched.
type APIConfigUpdate struct {
	APIName      *string `json:"apiName,omitempty"`
	EndpointURL  *string `json:"endpointUrl,omitempty"`
	RateLimit    *int    `json:"rateLimit,omitempty"`
	AuthRequired *bool   `json:"authRequired,omitempty"`
	Enabled      *bool   `json:"enabled,omitempty"`
	Description  *string `json:"description,omitempty"`
}

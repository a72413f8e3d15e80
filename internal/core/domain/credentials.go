package domain

// HiddenSecret replaces secret values whenever credentials are displayed.
//
//nolint:gosec // G101: placeholder text, not a credential.
const HiddenSecret = "[hidden_secret]"

// Credentials holds the OVHcloud API key triple used to sign requests.
// Credentials are immutable once handed to an API client.
type Credentials struct {
	// ApplicationKey identifies the calling application.
	ApplicationKey string `json:"application_key" yaml:"application_key"`

	// ApplicationSecret is combined with the consumer key to sign requests.
	// Never log or print it.
	ApplicationSecret string `json:"application_secret" yaml:"application_secret"`

	// ConsumerKey represents the authorised session.
	ConsumerKey string `json:"consumer_key" yaml:"consumer_key"`
}

// IsComplete reports whether all three keys are set.
func (c Credentials) IsComplete() bool {
	return c.ApplicationKey != "" && c.ApplicationSecret != "" && c.ConsumerKey != ""
}

// HideSecrets returns a copy safe for display.
func (c Credentials) HideSecrets() Credentials {
	c.ApplicationSecret = HiddenSecret
	return c
}

// CredentialRule is an access rule granted to a consumer key.
type CredentialRule struct {
	Method string `json:"method" yaml:"method"`
	Path   string `json:"path" yaml:"path"`
}

// CredentialDetails describes the consumer key currently in use.
type CredentialDetails struct {
	AllowedIPs    []string         `json:"allowedIps,omitempty" yaml:"allowedIps,omitempty"`
	ApplicationID int64            `json:"applicationId" yaml:"applicationId"`
	Creation      string           `json:"creation" yaml:"creation"`
	CredentialID  int64            `json:"credentialId" yaml:"credentialId"`
	Expiration    *string          `json:"expiration,omitempty" yaml:"expiration,omitempty"`
	LastUse       *string          `json:"lastUse,omitempty" yaml:"lastUse,omitempty"`
	OVHSupport    bool             `json:"ovhSupport" yaml:"ovhSupport"`
	Status        string           `json:"status" yaml:"status"`
	Rules         []CredentialRule `json:"rules" yaml:"rules"`
}

// Me describes the authenticated account.
type Me struct {
	User        *string  `json:"user,omitempty" yaml:"user,omitempty"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Roles       []string `json:"roles" yaml:"roles"`
}

// Project is a public cloud project, identified by its service name.
type Project struct {
	ProjectID   string `json:"project_id" yaml:"project_id"`
	Description string `json:"description" yaml:"description"`
}

package entities

// GatewayConfig is a provider profile. Credentials are opaque to the core and
// handed verbatim to the adapter; well-known keys are listed below for the
// adapters that use them.
//
// active/priority are administered externally; the core only reads them.

const (
	CredentialAccessToken     = "access_token"
	CredentialPublicKey       = "public_key"
	CredentialWebhookSecret   = "webhook_secret"
	CredentialNotificationURL = "notification_url"
)

type GatewayConfig struct {
	ID             string            `json:"id"`
	Provider       string            `json:"provider"`
	Credentials    map[string]string `json:"credentials"`
	Sandbox        bool              `json:"sandbox"`
	Priority       int               `json:"priority"`
	Active         bool              `json:"active"`
	EntityTypes    []EntityType      `json:"entity_types"`
	AllowedMethods []PaymentMethod   `json:"allowed_methods"`
}

func (c GatewayConfig) Credential(key string) string {
	if c.Credentials == nil {
		return ""
	}
	return c.Credentials[key]
}

func (c GatewayConfig) SupportsEntityType(t EntityType) bool {
	for _, et := range c.EntityTypes {
		if et == t {
			return true
		}
	}
	return false
}

// AllowsMethod treats an empty allow-list as "all methods".
func (c GatewayConfig) AllowsMethod(m PaymentMethod) bool {
	if len(c.AllowedMethods) == 0 {
		return true
	}
	for _, am := range c.AllowedMethods {
		if am == m {
			return true
		}
	}
	return false
}

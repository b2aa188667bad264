package config

// Config holds all runtime configuration for the icecube backend.
type Config struct {
	Port        string
	Environment string

	// Postgres connection string for the Supabase-hosted store; may be
	// empty, in which case stats, signups and referrer logging degrade
	// to no-ops instead of the server refusing to start
	SupabaseConnString string

	// shared secret for the stats reporting endpoint
	StatsToken string

	// when true, the 401 response carries token presence/absence flags
	StatsDebug bool

	// hostname of the landing page, used to classify referrers
	SiteHost string

	// EmailJS credentials for the contact form; all three must be set
	// for contact delivery to be enabled
	EmailJSPublicKey  string
	EmailJSServiceID  string
	EmailJSTemplateID string
}

// reports whether the backing store is configured
func (c *Config) StoreEnabled() bool {
	return c.SupabaseConnString != ""
}

// reports whether contact-form delivery is configured
func (c *Config) ContactEnabled() bool {
	return c.EmailJSPublicKey != "" && c.EmailJSServiceID != "" && c.EmailJSTemplateID != ""
}

package config

import (
	"fmt"
	"net/netip"
	"os"
	"slices"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build reads
const ExpectedEnvSchemaVersion = "1.0"

// Example values shipped in .env.example
const (
	exampleDBPassword    = "change_this_secure_password"
	exampleSessionSecret = "generate_with_openssl_rand_hex_32"
)

// RequiredEnvVars must be set explicitly outside dev, the defaults only suit a local database
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_NAME",
	"SESSION_SECRET",
}

// requiredFor returns the variables the selected backends add to RequiredEnvVars
func requiredFor(cacheType string) []string {
	required := slices.Clone(RequiredEnvVars)
	if cacheType == CacheTypeRedis {
		required = append(required, "REDIS_ADDR")
	}
	return required
}

// ValidateEnv checks the .env schema version and that every required variable is set
func (c *Config) ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set, add it to your .env file (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range requiredFor(c.CacheType) {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	for _, proxy := range c.TrustedProxies {
		if !validProxy(proxy) {
			return fmt.Errorf("TRUSTED_PROXIES entry %q is neither an IP nor a CIDR", proxy)
		}
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports settings that work but are
// likely mistakes for a deployed server
func (c *Config) ValidateEnvWithWarnings() ([]string, error) {
	if err := c.ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if c.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD is the example value, set a real password")
	}
	if c.SessionSecret == exampleSessionSecret {
		warnings = append(warnings, "SESSION_SECRET is the example value, generate one with: openssl rand -hex 32")
	}
	if slices.Contains(c.CORSOrigins, "*") {
		warnings = append(warnings, "CORS_ORIGINS contains *, browsers will not send session cookies to a wildcard origin")
	}
	if c.DevMode && c.Environment == EnvProduction {
		warnings = append(warnings, "DEV_MODE is enabled in prod, the direct item grant route is exposed")
	}
	if c.CatalogTTL > 0 && c.CatalogTTL < c.CatalogRefreshInterval {
		warnings = append(warnings, fmt.Sprintf(
			"CATALOG_TTL (%s) is shorter than CATALOG_REFRESH_INTERVAL (%s), requests will reload the catalog between refreshes",
			c.CatalogTTL, c.CatalogRefreshInterval))
	}

	return warnings, nil
}

func validProxy(s string) bool {
	if _, err := netip.ParseAddr(s); err == nil {
		return true
	}
	_, err := netip.ParsePrefix(s)
	return err == nil
}

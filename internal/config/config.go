// Package config reads the settings of the tool from environment
// variables.
package config

import (
	"net/url"
	"time"

	"github.com/dwebname/dwebup/internal/contenthash"
	"github.com/dwebname/dwebup/internal/pp"
)

// Config holds one invocation's settings. The secret and the RPC URL
// are treated as opaque, already-validated values; everything else is
// checked before any chain interaction.
type Config struct {
	Secret      string
	RPCURL      string
	Domain      string
	ContentHash string
	ContentType contenthash.Type
	DryRun      bool
	RPCTimeout  time.Duration
	TxTimeout   time.Duration
}

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		Secret:      "",
		RPCURL:      "",
		Domain:      "",
		ContentHash: "",
		ContentType: contenthash.IPFS,
		DryRun:      false,
		RPCTimeout:  time.Second * 30,
		TxTimeout:   time.Minute * 5,
	}
}

// ReadEnv reads all settings from the environment.
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	if ppfmt.IsEnabledFor(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading settings . . .")
		ppfmt = ppfmt.Indent()
	}

	if !ReadRequired(ppfmt, "SECRET", &c.Secret) ||
		!ReadRequired(ppfmt, "RPC_URL", &c.RPCURL) ||
		!ReadRequired(ppfmt, "DOMAIN", &c.Domain) ||
		!ReadRequired(ppfmt, "CONTENT_HASH", &c.ContentHash) ||
		!ReadContentType(ppfmt, "CONTENT_TYPE", &c.ContentType) ||
		!ReadBool(ppfmt, "DRY_RUN", &c.DryRun) ||
		!ReadNonnegDuration(ppfmt, "RPC_TIMEOUT", &c.RPCTimeout) ||
		!ReadNonnegDuration(ppfmt, "TX_TIMEOUT", &c.TxTimeout) {
		return false
	}

	if parsed, err := url.Parse(c.RPCURL); err == nil {
		switch parsed.Scheme {
		case "http", "ws":
			ppfmt.Warningf(pp.EmojiUserWarning,
				"The RPC endpoint %s is not encrypted; anyone on the path can read the embedded API key",
				redactURL(c.RPCURL))
		}
	}

	return true
}

// redactURL hides everything but the scheme and the host because RPC
// endpoint paths frequently embed provider API keys.
func redactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "(redacted)"
	}
	if parsed.Path == "" && parsed.User == nil {
		return raw
	}
	return parsed.Scheme + "://" + parsed.Host + "/(redacted)"
}

// Print prints the current settings, redacting the secret.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsEnabledFor(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiConfig, "Current settings:")
	inner := ppfmt.Indent()

	inner.Infof(pp.EmojiBullet, "Secret: (redacted)")
	inner.Infof(pp.EmojiBullet, "RPC endpoint: %s", redactURL(c.RPCURL))
	inner.Infof(pp.EmojiBullet, "Domain: %s", c.Domain)
	inner.Infof(pp.EmojiBullet, "Content hash: %s", c.ContentHash)
	inner.Infof(pp.EmojiBullet, "Content type: %s", c.ContentType)
	inner.Infof(pp.EmojiBullet, "Dry run: %t", c.DryRun)
	inner.Infof(pp.EmojiBullet, "RPC timeout: %v", c.RPCTimeout)
	inner.Infof(pp.EmojiBullet, "Transaction timeout: %v", c.TxTimeout)
}

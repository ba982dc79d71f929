package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dwebname/dwebup/internal/contenthash"
	"github.com/dwebname/dwebup/internal/pp"
)

// Getenv reads an environment variable and trims the space.
func Getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// ReadString reads an environment variable as a plain string.
func ReadString(ppfmt pp.PP, key string, field *string) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, *field)
		return true
	}

	*field = val
	return true
}

// ReadRequired reads an environment variable that must not be empty.
func ReadRequired(ppfmt pp.PP, key string, field *string) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Errorf(pp.EmojiUserError, "Needs %s", key)
		return false
	}

	*field = val
	return true
}

// ReadBool reads an environment variable as a boolean.
func ReadBool(ppfmt pp.PP, key string, field *bool) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%t", key, *field)
		return true
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, val, err)
		return false
	}

	*field = b
	return true
}

// ReadNonnegDuration reads an environment variable as a non-negative duration.
func ReadNonnegDuration(ppfmt pp.PP, key string, field *time.Duration) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%v", key, *field)
		return true
	}

	t, err := time.ParseDuration(val)
	switch {
	case err != nil:
		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is not a time duration: %v", key, val, err)
		return false
	case t < 0:
		ppfmt.Errorf(pp.EmojiUserError, "%s (%v) is negative", key, t)
		return false
	}

	*field = t
	return true
}

// ReadContentType reads an environment variable as a content-hash namespace tag.
func ReadContentType(ppfmt pp.PP, key string, field *contenthash.Type) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, *field)
		return true
	}

	parsed, ok := contenthash.ParseType(val)
	if !ok {
		ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is not a supported content type", key, val)
		return false
	}

	*field = parsed
	return true
}

// ReadEmoji reads an environment variable as emoji/no-emoji.
func ReadEmoji(key string, ppfmt *pp.PP) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	emoji, err := strconv.ParseBool(val)
	if err != nil {
		(*ppfmt).Errorf(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, val, err)
		return false
	}

	*ppfmt = (*ppfmt).SetEmoji(emoji)
	return true
}

// ReadQuiet reads an environment variable as quiet/verbose.
func ReadQuiet(key string, ppfmt *pp.PP) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	quiet, err := strconv.ParseBool(val)
	if err != nil {
		(*ppfmt).Errorf(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, val, err)
		return false
	}

	if quiet {
		*ppfmt = (*ppfmt).SetLevel(pp.Quiet)
	} else {
		*ppfmt = (*ppfmt).SetLevel(pp.Verbose)
	}
	return true
}

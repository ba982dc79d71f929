// Package main is the entry point of the content-hash updater.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dwebname/dwebup/internal/chain"
	"github.com/dwebname/dwebup/internal/config"
	"github.com/dwebname/dwebup/internal/contenthash"
	"github.com/dwebname/dwebup/internal/pp"
	"github.com/dwebname/dwebup/internal/registry"
	"github.com/dwebname/dwebup/internal/updater"
)

// Version is the version of the tool that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "dwebup"
	}
	return fmt.Sprintf("dwebup (%s)", Version)
}

// errorEmoji distinguishes user mistakes from failures of the chain or
// the endpoint.
func errorEmoji(err error) pp.Emoji {
	switch {
	case errors.Is(err, registry.ErrUnsupportedDomain),
		errors.Is(err, registry.ErrUnsupportedContentType),
		errors.Is(err, contenthash.ErrMalformedContentHash),
		errors.Is(err, chain.ErrInvalidSecret):
		return pp.EmojiUserError
	default:
		return pp.EmojiError
	}
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ppfmt := pp.New(os.Stdout)
	if !config.ReadEmoji("EMOJI", &ppfmt) || !config.ReadQuiet("QUIET", &ppfmt) {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}
	if !ppfmt.IsEnabledFor(pp.Info) {
		ppfmt.Noticef(pp.EmojiMute, "Quiet mode enabled")
	}

	ppfmt.Noticef(pp.EmojiStar, formatName())

	c := config.Default()
	if !c.ReadEnv(ppfmt) {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}
	c.Print(ppfmt)

	result, err := updater.New(chain.Dial).Update(context.Background(), ppfmt, c)
	if err != nil {
		ppfmt.Errorf(errorEmoji(err), "Failed to update: %v", err)
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	ppfmt.Infof(pp.EmojiGood, "%s", result.Describe())
	ppfmt.Noticef(pp.EmojiBye, "Bye!")
	return 0
}

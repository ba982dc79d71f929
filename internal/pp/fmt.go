package pp

import (
	"fmt"
	"io"
	"strings"
)

const indentPrefix = "   "

type formatter struct {
	writer io.Writer
	emoji  bool
	indent int
	level  Level
}

// New creates a new pretty printer.
func New(writer io.Writer) PP {
	return formatter{
		writer: writer,
		emoji:  true,
		indent: 0,
		level:  DefaultLevel,
	}
}

// SetEmoji sets whether emojis should be printed.
func (f formatter) SetEmoji(emoji bool) PP {
	f.emoji = emoji
	return f
}

// SetLevel sets messages of what levels should be printed.
func (f formatter) SetLevel(lvl Level) PP {
	f.level = lvl
	return f
}

// GetLevel gets the current level under which messages are hidden.
func (f formatter) GetLevel() Level {
	return f.level
}

// IsEnabledFor checks whether a message of level lvl will be printed.
func (f formatter) IsEnabledFor(lvl Level) bool {
	return lvl >= f.level
}

// Indent returns a new printer that indents the messages more than the input printer.
func (f formatter) Indent() PP {
	f.indent++
	return f
}

func (f formatter) output(lvl Level, emoji Emoji, msg string) {
	if lvl < f.level {
		return
	}

	var line string
	if f.emoji {
		line = fmt.Sprintf("%s%s %s",
			strings.Repeat(indentPrefix, f.indent),
			string(emoji),
			msg)
	} else {
		line = fmt.Sprintf("%s%s",
			strings.Repeat(indentPrefix, f.indent),
			msg)
	}
	line = strings.TrimSuffix(line, "\n")
	fmt.Fprintln(f.writer, line)
}

func (f formatter) printf(lvl Level, emoji Emoji, format string, args ...any) {
	f.output(lvl, emoji, fmt.Sprintf(format, args...))
}

// Debugf formats and sends a message at the level [Debug].
func (f formatter) Debugf(emoji Emoji, format string, args ...any) {
	f.printf(Debug, emoji, format, args...)
}

// Infof formats and sends a message at the level [Info].
func (f formatter) Infof(emoji Emoji, format string, args ...any) {
	f.printf(Info, emoji, format, args...)
}

// Noticef formats and sends a message at the level [Notice].
func (f formatter) Noticef(emoji Emoji, format string, args ...any) {
	f.printf(Notice, emoji, format, args...)
}

// Warningf formats and sends a message at the level [Warning].
func (f formatter) Warningf(emoji Emoji, format string, args ...any) {
	f.printf(Warning, emoji, format, args...)
}

// Errorf formats and sends a message at the level [Error].
func (f formatter) Errorf(emoji Emoji, format string, args ...any) {
	f.printf(Error, emoji, format, args...)
}

package pp

import "fmt"

// Record is a single recorded message for testing.
type Record struct {
	Indent  int
	Level   Level
	Emoji   Emoji
	Message string
}

// NewRecord creates a new [Record].
func NewRecord(indent int, level Level, emoji Emoji, message string) Record {
	return Record{indent, level, emoji, message}
}

// Mock is a pretty printer that remembers all printed messages.
type Mock struct {
	Records *[]Record
	indent  int
	level   Level
}

// NewMock creates a new [Mock].
func NewMock() *Mock {
	var records []Record
	return &Mock{
		Records: &records,
		indent:  0,
		level:   DefaultLevel,
	}
}

// Clear deletes all recorded messages.
func (m *Mock) Clear() {
	*m.Records = nil
}

// SetEmoji ignores the setting; recorded messages always keep their emojis.
func (m *Mock) SetEmoji(bool) PP {
	return m
}

// SetLevel sets the level under which messages are dropped.
func (m *Mock) SetLevel(lvl Level) PP {
	copied := *m
	copied.level = lvl
	return &copied
}

// GetLevel gets the level under which messages are dropped.
func (m *Mock) GetLevel() Level {
	return m.level
}

// IsEnabledFor checks whether a message of level lvl will be recorded.
func (m *Mock) IsEnabledFor(lvl Level) bool {
	return lvl >= m.level
}

// Indent returns a new mock that records messages with more indentation.
// The recorded messages are shared with the original mock.
func (m *Mock) Indent() PP {
	copied := *m
	copied.indent++
	return &copied
}

func (m *Mock) printf(lvl Level, emoji Emoji, format string, args ...any) {
	if lvl < m.level {
		return
	}

	*m.Records = append(*m.Records, Record{
		Indent:  m.indent,
		Level:   lvl,
		Emoji:   emoji,
		Message: fmt.Sprintf(format, args...),
	})
}

// Debugf records a message at the level [Debug].
func (m *Mock) Debugf(emoji Emoji, format string, args ...any) {
	m.printf(Debug, emoji, format, args...)
}

// Infof records a message at the level [Info].
func (m *Mock) Infof(emoji Emoji, format string, args ...any) {
	m.printf(Info, emoji, format, args...)
}

// Noticef records a message at the level [Notice].
func (m *Mock) Noticef(emoji Emoji, format string, args ...any) {
	m.printf(Notice, emoji, format, args...)
}

// Warningf records a message at the level [Warning].
func (m *Mock) Warningf(emoji Emoji, format string, args ...any) {
	m.printf(Warning, emoji, format, args...)
}

// Errorf records a message at the level [Error].
func (m *Mock) Errorf(emoji Emoji, format string, args ...any) {
	m.printf(Error, emoji, format, args...)
}

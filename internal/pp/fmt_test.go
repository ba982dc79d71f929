package pp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dwebname/dwebup/internal/pp"
)

func TestIndent(t *testing.T) {
	t.Parallel()

	var buf strings.Builder

	outer := pp.New(&buf)
	middle := outer.Indent()
	inner := middle.Indent()

	outer.Errorf(pp.EmojiStar, "message1")
	middle.Noticef(pp.EmojiStar, "message2")
	outer.Errorf(pp.EmojiStar, "message3")
	inner.Infof(pp.EmojiStar, "message4")
	middle.Warningf(pp.EmojiStar, "message5")

	require.Equal(t,
		`🌟 message1
   🌟 message2
🌟 message3
      🌟 message4
   🌟 message5
`,
		buf.String())
}

func TestSetEmoji(t *testing.T) {
	t.Parallel()

	var buf strings.Builder

	fmt := pp.New(&buf).SetEmoji(false)
	fmt.Noticef(pp.EmojiStar, "message1")
	fmt.Indent().Noticef(pp.EmojiStar, "message2")

	require.Equal(t, "message1\n   message2\n", buf.String())
}

func TestSetLevel(t *testing.T) {
	t.Parallel()

	for _, tc := range [...]struct {
		lvl      pp.Level
		expected string
	}{
		{pp.Quiet, "notice\nwarning\nerror\n"},
		{pp.Verbose, "info\nnotice\nwarning\nerror\n"},
		{pp.Debug, "debug\ninfo\nnotice\nwarning\nerror\n"},
	} {
		var buf strings.Builder

		fmt := pp.New(&buf).SetEmoji(false).SetLevel(tc.lvl)
		require.Equal(t, tc.lvl, fmt.GetLevel())
		require.True(t, fmt.IsEnabledFor(pp.Error))

		fmt.Debugf(pp.EmojiStar, "debug")
		fmt.Infof(pp.EmojiStar, "info")
		fmt.Noticef(pp.EmojiStar, "notice")
		fmt.Warningf(pp.EmojiStar, "warning")
		fmt.Errorf(pp.EmojiStar, "error")

		require.Equal(t, tc.expected, buf.String())
	}
}

func TestMockIndent(t *testing.T) {
	t.Parallel()

	mock := pp.NewMock()
	mock.Noticef(pp.EmojiStar, "a")
	mock.Indent().Noticef(pp.EmojiStar, "b")
	mock.Noticef(pp.EmojiStar, "c")

	require.Equal(t, []pp.Record{
		pp.NewRecord(0, pp.Notice, pp.EmojiStar, "a"),
		pp.NewRecord(1, pp.Notice, pp.EmojiStar, "b"),
		pp.NewRecord(0, pp.Notice, pp.EmojiStar, "c"),
	}, *mock.Records)
}

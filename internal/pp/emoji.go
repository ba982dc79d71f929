package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars Emoji = "📖" // reading configuration
	EmojiConfig  Emoji = "🔧" // showing configuration
	EmojiMute    Emoji = "🔇" // quiet mode

	EmojiName     Emoji = "🏷️" // classifying domain names
	EmojiEncode   Emoji = "📦" // encoding content hashes
	EmojiNetwork  Emoji = "🌐" // connecting to the RPC endpoint
	EmojiKey      Emoji = "🔑" // the signing identity
	EmojiLookup   Emoji = "🔍" // reading on-chain records
	EmojiUpdate   Emoji = "📡" // submitting the update transaction
	EmojiDryRun   Emoji = "🧪" // dry runs
	EmojiConfirm  Emoji = "⛓️" // transaction confirmations
	EmojiAlarm    Emoji = "⏰" // bounded waits

	EmojiAlreadyDone Emoji = "🤷" // the record was already up to date
	EmojiGood        Emoji = "👍" // everything looks good
	EmojiBye         Emoji = "👋" // bye!

	EmojiUserError   Emoji = "😡" // mistakes made by users
	EmojiUserWarning Emoji = "😦" // warnings about possible user mistakes
	EmojiError       Emoji = "😞" // errors that are not (directly) caused by user errors
	EmojiImpossible  Emoji = "🤯" // the impossible happened
)

// String converts an [Emoji] to a string.
func (e Emoji) String() string { return string(e) }

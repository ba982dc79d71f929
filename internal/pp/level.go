package pp

// Level is the type of message levels.
type Level int

// Pre-defined levels.
const (
	Debug        Level = iota // debugging details, hidden by default
	Info                      // information not about actual actions
	Notice                    // information about actual actions, but not an error
	Warning                   // non-fatal problems where the update can still proceed
	Error                     // fatal errors where the invocation must stop
	DefaultLevel = Info
	Verbose      = Info
	Quiet        = Notice
)

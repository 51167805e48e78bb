package framebuffer

import (
	"fmt"
	"io"
	"log"
)

// DefaultTag is used for diagnostic messages when no tag is configured.
const DefaultTag = "framebuffer"

// Logger receives diagnostic messages.
type Logger interface {
	Log(tag, message string)
}

// LoggerFunc is an adapter to use a plain function as a [Logger].
type LoggerFunc func(tag, message string)

// Log calls f.
func (f LoggerFunc) Log(tag, message string) {
	f(tag, message)
}

// StdLogger writes messages as "tag: message" to a [log.Logger].
type StdLogger struct {
	*log.Logger
}

// Log the message. A nil Logger writes to the standard logger.
func (l StdLogger) Log(tag, message string) {
	if l.Logger == nil {
		log.Printf("%s: %s", tag, message)
		return
	}
	l.Logger.Printf("%s: %s", tag, message)
}

// Discard drops all messages.
var Discard Logger = StdLogger{log.New(io.Discard, "", 0)}

// Config for a [Provider] or [Bridge].
type Config struct {
	// Logger receives diagnostic messages, nil uses the standard logger.
	Logger Logger

	// Tag for diagnostic messages.
	Tag string
}

// DefaultConfig logs to the standard logger.
var DefaultConfig = Config{
	Tag: DefaultTag,
}

func (c *Config) logf(format string, args ...interface{}) {
	var (
		logger Logger = StdLogger{}
		tag           = DefaultTag
	)
	if c != nil {
		if c.Logger != nil {
			logger = c.Logger
		}
		if c.Tag != "" {
			tag = c.Tag
		}
	}
	logger.Log(tag, fmt.Sprintf(format, args...))
}

package islandhop

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger writes leveled lines; debug and info go to out, warnings and errors to err.
type DefaultLogger struct {
	mu     sync.Mutex
	debug  bool
	prefix string
	out    *log.Logger
	err    *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewLogger(os.Stdout, os.Stderr, prefix, debug)
}

func NewLogger(out, errOut io.Writer, prefix string, debug bool) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	return &DefaultLogger{
		debug:  debug,
		prefix: prefix,
		out:    log.New(out, "", flags),
		err:    log.New(errOut, "", flags),
	}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *DefaultLogger) line(level string, format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, level, msg)
	}
	return fmt.Sprintf("%s: %s", level, msg)
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.out.Print(l.line("DEBUG", format, args...))
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.out.Print(l.line("INFO", format, args...))
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.err.Print(l.line("WARN", format, args...))
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.err.Print(l.line("ERROR", format, args...))
}

// LoggingModule installs a logger resource. Install it first so later modules
// can log during their own Install.
type LoggingModule struct {
	Prefix string
	Debug  bool
	// Logger overrides the default stdout/stderr logger when set.
	Logger Logger
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	if m.Logger != nil {
		cmd.AddResources(&loggerResource{Logger: m.Logger})
		return
	}
	cmd.AddResources(NewDefaultLogger(m.Prefix, m.Debug))
}

// loggerResource lets an arbitrary Logger implementation sit in the resource map.
type loggerResource struct {
	Logger
}

// Scoped returns a Logger that tags every line with scope, e.g. "character".
func Scoped(l Logger, scope string) Logger {
	if l == nil {
		l = NewNopLogger()
	}
	return &scopedLogger{Logger: l, scope: scope}
}

type scopedLogger struct {
	Logger
	scope string
}

func (l *scopedLogger) tag(format string, args []any) (string, []any) {
	return "%s: " + format, append([]any{l.scope}, args...)
}

func (l *scopedLogger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	format, args = l.tag(format, args)
	l.Logger.Debugf(format, args...)
}

func (l *scopedLogger) Infof(format string, args ...any) {
	format, args = l.tag(format, args)
	l.Logger.Infof(format, args...)
}

func (l *scopedLogger) Warnf(format string, args ...any) {
	format, args = l.tag(format, args)
	l.Logger.Warnf(format, args...)
}

func (l *scopedLogger) Errorf(format string, args ...any) {
	format, args = l.tag(format, args)
	l.Logger.Errorf(format, args...)
}

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }

func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}

// Logger returns the installed Logger resource, or a no-op logger. Never nil.
func (app *App) Logger() Logger {
	if app == nil || app.resources == nil {
		return NewNopLogger()
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return NewNopLogger()
}

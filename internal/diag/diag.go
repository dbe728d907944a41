package diag

import (
	"fmt"

	"github.com/fatih/color"
	"sable/internal/typing"
)

// Level represents the severity of a diagnostic
type Level string

const (
	Error   Level = "error"
	Warning Level = "warning"
	Note    Level = "note"
)

// Diagnostic represents a structured pass-level finding. The traversal
// engine itself never produces these; passes built on top of it do,
// through their own Diagnostics slices.
type Diagnostic struct {
	Level   Level
	Code    string // Error code like P0301
	Message string
	Loc     typing.Loc
}

// Format renders a diagnostic with colored severity, in the style
// "error[P0301]: message\n  --> file:line:col".
func (d Diagnostic) Format() string {
	levelColor := getLevelColor(d.Level)
	dim := color.New(color.Faint).SprintFunc()

	var header string
	if d.Code != "" {
		header = fmt.Sprintf("%s[%s]: %s", levelColor(string(d.Level)), d.Code, d.Message)
	} else {
		header = fmt.Sprintf("%s: %s", levelColor(string(d.Level)), d.Message)
	}

	return fmt.Sprintf("%s\n  %s %s\n", header, dim("-->"), d.Loc)
}

func getLevelColor(level Level) func(a ...interface{}) string {
	switch level {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.Bold).SprintFunc()
	}
}

// Errorf builds an error-level diagnostic.
func Errorf(loc typing.Loc, code, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Level:   Error,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Loc:     loc,
	}
}

// Warningf builds a warning-level diagnostic.
func Warningf(loc typing.Loc, code, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Level:   Warning,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Loc:     loc,
	}
}

// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package xlog provides a Logger interface and supporting functions
to support control over debug output.

The Logger interface is simple and it is supported by the log.Logger type.
The functions Print, Printf and Println accept a nil Logger, in which case
nothing will be printed and no formatting takes place.

The package maintains also a standard logger for commands. Its output is
controlled by a set of flags: warnings are suppressed by Lnowarn,
debug messages are printed only if Ldebug is set.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger is the interface required by the nil-safe print functions.
// The log.Logger type supports this interface.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}

// Flags for the standard logger. The values of the log package are
// supported as well.
const (
	// Lnowarn suppresses warnings.
	Lnowarn = 1 << (iota + 16)
	// Ldebug enables debug output.
	Ldebug
	// Lquiet suppresses all output except fatal messages.
	Lquiet
)

const levelMask = Lnowarn | Ldebug | Lquiet

var (
	mu    sync.Mutex
	std   = log.New(os.Stderr, "", log.LstdFlags)
	flags = log.LstdFlags
)

// SetFlags sets the flags of the standard logger.
func SetFlags(f int) {
	mu.Lock()
	flags = f
	mu.Unlock()
	std.SetFlags(f &^ levelMask)
}

// Flags returns the flags of the standard logger.
func Flags() int {
	mu.Lock()
	defer mu.Unlock()
	return flags
}

// SetPrefix sets the prefix of the standard logger.
func SetPrefix(prefix string) { std.SetPrefix(prefix) }

// SetOutput sets the output of the standard logger.
func SetOutput(w io.Writer) { std.SetOutput(w) }

func enabled(mask int) bool {
	f := Flags()
	return f&Lquiet == 0 && f&mask == 0
}

// Warn prints a warning unless Lnowarn or Lquiet is set.
func Warn(v ...interface{}) {
	if enabled(Lnowarn) {
		std.Output(2, fmt.Sprint(v...))
	}
}

// Warnf prints a formatted warning unless Lnowarn or Lquiet is set.
func Warnf(format string, v ...interface{}) {
	if enabled(Lnowarn) {
		std.Output(2, fmt.Sprintf(format, v...))
	}
}

// Debug prints its arguments only if Ldebug is set.
func Debug(v ...interface{}) {
	if f := Flags(); f&Ldebug != 0 && f&Lquiet == 0 {
		std.Output(2, fmt.Sprint(v...))
	}
}

// Debugf prints a formatted message only if Ldebug is set.
func Debugf(format string, v ...interface{}) {
	if f := Flags(); f&Ldebug != 0 && f&Lquiet == 0 {
		std.Output(2, fmt.Sprintf(format, v...))
	}
}

// Fatal prints the arguments and terminates the program with exit code 1.
func Fatal(v ...interface{}) {
	std.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf prints a formatted message and terminates the program with exit
// code 1.
func Fatalf(format string, v ...interface{}) {
	std.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

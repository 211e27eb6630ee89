// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Caller is how much of the calling code location is
// added to each log line.
type Caller uint8

const (
	// CallerNone omits the caller.
	CallerNone Caller = iota
	// CallerShort adds the caller file name and line number.
	CallerShort
	// CallerLong adds the caller file name, line number and
	// function name.
	CallerLong
)

func (c Caller) String() string {
	switch c {
	case CallerNone:
		return "none"
	case CallerShort:
		return "short"
	case CallerLong:
		return "long"
	default:
		return "caller(" + strconv.Itoa(int(c)) + ")"
	}
}

var ErrCallerNotRecognised = errors.New("caller mode is not recognised")

// ParseCaller parses a caller mode from its string representation.
func ParseCaller(s string) (caller Caller, err error) {
	switch strings.ToLower(s) {
	case "", CallerNone.String():
		return CallerNone, nil
	case CallerShort.String():
		return CallerShort, nil
	case CallerLong.String():
		return CallerLong, nil
	}
	return CallerNone, fmt.Errorf("%w: %s", ErrCallerNotRecognised, s)
}

// callerString returns the location of the code logging, skipping
// the number of stack frames given, or an empty string for CallerNone.
func callerString(caller Caller, skip int) string {
	if caller == CallerNone {
		return ""
	}

	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}

	location := filepath.Base(file) + ":L" + strconv.Itoa(line)
	if caller != CallerLong {
		return location
	}

	function := runtime.FuncForPC(pc)
	if function == nil {
		return location
	}
	// Keep the function name after the package path.
	name := function.Name()
	name = name[strings.LastIndexByte(name, '/')+1:]
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		name = name[dot+1:]
	}
	return location + ":" + name
}

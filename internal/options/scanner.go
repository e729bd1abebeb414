// SPDX-License-Identifier: GPL-2.0-or-later

package options

import (
	"strings"

	"github.com/charmbracelet/log"
)

// argKind mirrors the getopt argument classes.
type argKind int

const (
	noArgument argKind = iota
	requiredArgument
	optionalArgument
)

// optSpec ties a long option name to its short character and argument
// class. The table is the Go rendition of the getopt long-option table
// plus the "hvd::l:f:s:c:p" optstring.
type optSpec struct {
	long  string
	short byte
	kind  argKind
}

var optSpecs = []optSpec{
	{"help", 'h', noArgument},
	{"version", 'v', noArgument},
	{"debug", 'd', optionalArgument},
	{"file", 'f', requiredArgument},
	{"search", 's', requiredArgument},
	{"log_output", 'l', requiredArgument},
	{"command", 'c', requiredArgument},
	{"", 'p', noArgument}, // deprecated, short form only
}

func specByLong(name string) *optSpec {
	for i := range optSpecs {
		if optSpecs[i].long != "" && optSpecs[i].long == name {
			return &optSpecs[i]
		}
	}
	return nil
}

func specByShort(c byte) *optSpec {
	for i := range optSpecs {
		if optSpecs[i].short == c {
			return &optSpecs[i]
		}
	}
	return nil
}

// option is one recognized option occurrence, identified by its short
// character. arg is empty when no argument was supplied.
type option struct {
	code byte
	arg  string
}

// scanner walks the argument vector left to right in getopt conventions:
// short options may cluster and carry attached arguments, long options
// accept --name=value, and "--" terminates option scanning. Unrecognized
// options and missing required arguments are diagnosed and skipped rather
// than aborting the scan, matching the permissive startup policy.
type scanner struct {
	args  []string
	pos   int
	short string // remainder of the short-option cluster being consumed
}

func newScanner(args []string) *scanner {
	return &scanner{args: args}
}

// next returns the next recognized option, or ok=false once the argument
// vector is exhausted.
func (sc *scanner) next() (option, bool) {
	for {
		if sc.short != "" {
			if opt, ok := sc.nextShort(); ok {
				return opt, true
			}
			continue
		}

		if sc.pos >= len(sc.args) {
			return option{}, false
		}

		tok := sc.args[sc.pos]
		sc.pos++

		switch {
		case tok == "--":
			sc.pos = len(sc.args)
			return option{}, false
		case strings.HasPrefix(tok, "--"):
			if opt, ok := sc.nextLong(tok[2:]); ok {
				return opt, true
			}
		case len(tok) > 1 && tok[0] == '-':
			sc.short = tok[1:]
		default:
			// Non-option argument; getopt would permute it to the end
			// and the caller ignores it.
			log.Debug("ignoring non-option argument", "arg", tok)
		}
	}
}

func (sc *scanner) nextShort() (option, bool) {
	c := sc.short[0]
	rest := sc.short[1:]

	spec := specByShort(c)
	if spec == nil {
		log.Error("invalid option", "option", "-"+string(c))
		sc.short = rest
		return option{}, false
	}

	switch spec.kind {
	case noArgument:
		sc.short = rest
		return option{code: c}, true
	case requiredArgument:
		sc.short = ""
		if rest != "" {
			return option{code: c, arg: rest}, true
		}
		if sc.pos < len(sc.args) {
			arg := sc.args[sc.pos]
			sc.pos++
			return option{code: c, arg: arg}, true
		}
		log.Error("option requires an argument", "option", "-"+string(c))
		return option{code: c}, true
	default: // optionalArgument
		sc.short = ""
		if rest != "" {
			return option{code: c, arg: rest}, true
		}
		return option{code: c, arg: sc.takeOptional()}, true
	}
}

func (sc *scanner) nextLong(body string) (option, bool) {
	name, value, hasValue := strings.Cut(body, "=")

	spec := specByLong(name)
	if spec == nil {
		log.Error("unrecognized option", "option", "--"+name)
		return option{}, false
	}

	switch spec.kind {
	case noArgument:
		if hasValue {
			log.Error("option doesn't allow an argument", "option", "--"+name)
			return option{}, false
		}
		return option{code: spec.short}, true
	case requiredArgument:
		if hasValue {
			return option{code: spec.short, arg: value}, true
		}
		if sc.pos < len(sc.args) {
			arg := sc.args[sc.pos]
			sc.pos++
			return option{code: spec.short, arg: arg}, true
		}
		log.Error("option requires an argument", "option", "--"+name)
		return option{code: spec.short}, true
	default: // optionalArgument
		if hasValue {
			return option{code: spec.short, arg: value}, true
		}
		return option{code: spec.short, arg: sc.takeOptional()}, true
	}
}

// takeOptional consumes the next token as an optional argument when it
// does not look like another option.
func (sc *scanner) takeOptional() string {
	if sc.pos < len(sc.args) && !strings.HasPrefix(sc.args[sc.pos], "-") {
		arg := sc.args[sc.pos]
		sc.pos++
		return arg
	}
	return ""
}

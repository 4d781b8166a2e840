// Package permissions parses user-supplied permission mode
// specifications, octal or symbolic, into permission bit masks.
package permissions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Default permission constants (user-only access for security)
const (
	DefaultFilePerms       = 0o600 // Read/write for owner only
	DefaultExecutablePerms = 0o700 // Read/write/execute for owner only
	DefaultDirPerms        = 0o700 // Read/write/execute for owner only
)

// ErrMalformedMode reports a mode specification that does not parse.
// The wrapping error quotes the offending input.
var ErrMalformedMode = errors.New("❌ malformed mode specification")

// Category masks: one rwx digit per category plus the special bit that
// category can carry (setuid, setgid, sticky).
const (
	maskUser  = 0o4700
	maskGroup = 0o2070
	maskOther = 0o1007
	maskAll   = 0o7777
)

// Parse turns a mode specification into permission bits.
//
// A specification containing any decimal digit is treated as numeric
// (octal) and the umask is ignored. Anything else is a POSIX symbolic
// specification ("u+x", "go-w", "a=rx", comma-separated clauses)
// applied against a base of zero; clauses that name no category are
// limited by the umask, and consideringDir decides whether "X" grants
// execute.
func Parse(spec string, consideringDir bool, umask uint32) (uint32, error) {
	if strings.ContainsAny(spec, "0123456789") {
		return parseNumeric(spec)
	}
	return parseSymbolic(0, spec, umask, consideringDir)
}

// parseNumeric interprets spec as an octal bit mask. A leading
// operator is accepted the way chmod accepts one; against the zero
// base "+" and "=" assign the value and "-" clears to zero.
func parseNumeric(spec string) (uint32, error) {
	s := spec
	var op byte
	if s != "" && isOp(s[0]) {
		op = s[0]
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "0o")
	val, err := strconv.ParseUint(s, 8, 32)
	if err != nil || val > maskAll {
		return 0, fmt.Errorf("%w: %q", ErrMalformedMode, spec)
	}
	if op == '-' {
		return 0, nil
	}
	return uint32(val), nil
}

func parseSymbolic(mode uint32, spec string, umask uint32, consideringDir bool) (uint32, error) {
	if spec == "" {
		return 0, fmt.Errorf("%w: empty specification", ErrMalformedMode)
	}
	for _, clause := range strings.Split(spec, ",") {
		var err error
		mode, err = applyClause(mode, clause, umask, consideringDir)
		if err != nil {
			return 0, err
		}
	}
	return mode, nil
}

// applyClause applies a single [ugoa...][+-=][rwxXst...] clause, with
// possibly several operator/permission groups ("u+r-w").
func applyClause(mode uint32, clause string, umask uint32, consideringDir bool) (uint32, error) {
	who, rest := scanWho(clause)
	if rest == "" || !isOp(rest[0]) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedMode, clause)
	}

	mask := who
	if who == 0 {
		mask = maskAll
	}

	for len(rest) > 0 {
		op := rest[0]
		rest = rest[1:]

		end := 0
		for end < len(rest) && !isOp(rest[end]) {
			end++
		}
		bits, err := permBits(rest[:end], mode, consideringDir)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedMode, clause)
		}
		rest = rest[end:]

		bits &= mask
		if who == 0 {
			// POSIX: with no category named, the umask suppresses
			// the bits it masks.
			bits &^= umask
		}

		switch op {
		case '+':
			mode |= bits
		case '-':
			mode &^= bits
		case '=':
			mode = mode&^mask | bits
		}
	}
	return mode, nil
}

func isOp(c byte) bool { return c == '+' || c == '-' || c == '=' }

// scanWho consumes leading category letters, returning their combined
// mask (zero when none were named) and the remainder of the clause.
func scanWho(clause string) (uint32, string) {
	var who uint32
	i := 0
scan:
	for ; i < len(clause); i++ {
		switch clause[i] {
		case 'u':
			who |= maskUser
		case 'g':
			who |= maskGroup
		case 'o':
			who |= maskOther
		case 'a':
			who |= maskAll
		default:
			break scan
		}
	}
	return who, clause[i:]
}

// permBits resolves the permission letters after an operator into a
// category-spread bit mask. A lone category letter copies the bits
// accumulated so far ("g=u").
func permBits(perms string, mode uint32, consideringDir bool) (uint32, error) {
	if len(perms) == 1 {
		switch perms[0] {
		case 'u':
			return spread(mode >> 6 & 7), nil
		case 'g':
			return spread(mode >> 3 & 7), nil
		case 'o':
			return spread(mode & 7), nil
		}
	}

	var bits uint32
	for i := 0; i < len(perms); i++ {
		switch perms[i] {
		case 'r':
			bits |= 0o444
		case 'w':
			bits |= 0o222
		case 'x':
			bits |= 0o111
		case 'X':
			// Conditional execute: directories, or entries that
			// already carry an execute bit.
			if consideringDir || mode&0o111 != 0 {
				bits |= 0o111
			}
		case 's':
			bits |= 0o6000
		case 't':
			bits |= 0o1000
		default:
			return 0, fmt.Errorf("invalid permission character %q", perms[i])
		}
	}
	return bits, nil
}

// spread replicates a single rwx digit across user, group and other.
func spread(digit uint32) uint32 {
	return digit<<6 | digit<<3 | digit
}

// ParseOctalString parses a bare octal permission string like "755",
// "0755" or "0o755", applying the default file permissions when the
// string is empty.
func ParseOctalString(s string) (uint32, error) {
	if s == "" {
		return DefaultFilePerms, nil
	}
	trimmed := strings.TrimPrefix(s, "0o")
	val, err := strconv.ParseUint(trimmed, 8, 32)
	if err != nil || val > maskAll {
		return 0, fmt.Errorf("%w: %q", ErrMalformedMode, s)
	}
	return uint32(val), nil
}

// FormatOctal formats a permission value as an octal string
func FormatOctal(perm uint32) string {
	return fmt.Sprintf("0%o", perm)
}

// IsExecutable checks if permissions include execute bit for owner
func IsExecutable(perm uint32) bool {
	return perm&0o100 != 0
}

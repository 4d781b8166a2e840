package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Numeric(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected uint32
	}{
		{name: "plain octal", spec: "755", expected: 0o755},
		{name: "leading zero", spec: "0755", expected: 0o755},
		{name: "0o prefix", spec: "0o755", expected: 0o755},
		{name: "read write", spec: "644", expected: 0o644},
		{name: "zero", spec: "0", expected: 0},
		{name: "setuid digit", spec: "4755", expected: 0o4755},
		{name: "plus operator assigns", spec: "+111", expected: 0o111},
		{name: "equals operator assigns", spec: "=640", expected: 0o640},
		{name: "minus operator clears to zero", spec: "-777", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// umask must not influence the numeric branch
			for _, umask := range []uint32{0, 0o022, 0o777} {
				mode, err := Parse(tt.spec, false, umask)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, mode, "umask 0%o", umask)
			}
		})
	}
}

func TestParse_NumericMalformed(t *testing.T) {
	for _, spec := range []string{"89", "0x755", "12345", "7a7", "0o"} {
		t.Run(spec, func(t *testing.T) {
			_, err := Parse(spec, false, 0)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedMode)
			assert.ErrorContains(t, err, spec)
		})
	}
}

func TestParse_Symbolic(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		dir      bool
		umask    uint32
		expected uint32
	}{
		{name: "owner execute", spec: "u+x", umask: 0o022, expected: 0o100},
		{name: "owner and group execute", spec: "ug+x", umask: 0o022, expected: 0o110},
		{name: "explicit who ignores umask", spec: "a=rx", umask: 0o077, expected: 0o555},
		{name: "bare assign masked", spec: "=rx", umask: 0o027, expected: 0o550},
		{name: "bare add masked", spec: "+w", umask: 0o022, expected: 0o200},
		{name: "bare add execute on file", spec: "+X", expected: 0},
		{name: "conditional execute on dir", spec: "a+X", dir: true, expected: 0o111},
		{name: "conditional execute on file", spec: "a+X", expected: 0},
		{name: "multiple clauses", spec: "u=rw,go=r", expected: 0o644},
		{name: "setuid", spec: "u+s", expected: 0o4000},
		{name: "setgid", spec: "g+s", expected: 0o2000},
		{name: "setuid and setgid", spec: "a+s", expected: 0o6000},
		{name: "sticky", spec: "o+t", expected: 0o1000},
		{name: "mixed ops in one clause", spec: "u+rw-w", expected: 0o400},
		{name: "copy category", spec: "u=rwx,g=u", expected: 0o770},
		{name: "clear on empty base is empty", spec: "go-w", expected: 0},
		{name: "assign nothing", spec: "u=", expected: 0},
		// POSIX allows an op with an empty permission list
		{name: "bare op without permissions", spec: "+", expected: 0},
		{name: "bare minus without permissions", spec: "-", umask: 0o022, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := Parse(tt.spec, tt.dir, tt.umask)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestParse_SymbolicMalformed(t *testing.T) {
	for _, spec := range []string{"", "u", "u+q", "w+u", "u&x", "u+x,,", "ug", "rwx"} {
		t.Run(spec, func(t *testing.T) {
			_, err := Parse(spec, false, 0)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedMode)
		})
	}
}

func TestParseSymbolic_AgainstNonZeroBase(t *testing.T) {
	tests := []struct {
		name     string
		base     uint32
		spec     string
		expected uint32
	}{
		{name: "clears group and other write", base: 0o666, spec: "go-w", expected: 0o644},
		{name: "conditional execute follows existing bit", base: 0o700, spec: "a+X", expected: 0o711},
		{name: "assign replaces category bits", base: 0o777, spec: "g=r", expected: 0o747},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := parseSymbolic(tt.base, tt.spec, 0, false)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestParseOctalString(t *testing.T) {
	mode, err := ParseOctalString("")
	require.NoError(t, err)
	assert.Equal(t, uint32(DefaultFilePerms), mode)

	mode, err = ParseOctalString("0o640")
	require.NoError(t, err)
	assert.Equal(t, uint32(0o640), mode)

	_, err = ParseOctalString("99")
	assert.ErrorIs(t, err, ErrMalformedMode)
}

func TestFormatOctal(t *testing.T) {
	assert.Equal(t, "0755", FormatOctal(0o755))
	assert.Equal(t, "04700", FormatOctal(0o4700))
}

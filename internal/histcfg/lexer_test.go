package histcfg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", `TH1F h1 Energy 100 0 50`, []string{"TH1F", "h1", "Energy", "100", "0", "50"}},
		{"tabs and runs of blanks", "TH1F\th1  \t Energy 1 0 1", []string{"TH1F", "h1", "Energy", "1", "0", "1"}},
		{"quoted title", `TH1F h1 "Energy" 100 0 50`, []string{"TH1F", "h1", "Energy", "100", "0", "50"}},
		{"quoted with blanks", `TH1F h1 "Energy deposit [GeV]" 1 0 1`, []string{"TH1F", "h1", "Energy deposit [GeV]", "1", "0", "1"}},
		{"escaped quote", `a "say \"hi\"" b`, []string{"a", `say "hi"`, "b"}},
		{"escaped escape", `"a\\b"`, []string{`a\b`}},
		{"lone backslash kept", `"a\b"`, []string{`a\b`}},
		{"empty quoted", `"" TH1F`, []string{"", "TH1F"}},
		{"quote inside bare token", `a"b c`, []string{`a"b`, "c"}},
		{"blank", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitFields(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSplitFields_Errors(t *testing.T) {
	for _, line := range []string{
		`TH1F h1 "Energy 100 0 50`,
		`TH1F h1 "Energy"x 100 0 50`,
		`"ends with escape\"`,
	} {
		_, err := splitFields(line)
		require.Error(t, err, line)
		require.True(t, errors.Is(err, ErrMalformedLine), line)
	}
}

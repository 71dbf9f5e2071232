package hist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		token   string
		want    Kind
		ok      bool
		dim     int
		profile bool
	}{
		{"TH1F", TH1F, true, 1, false},
		{"TH1D", TH1D, true, 1, false},
		{"TProfile", TProfile, true, 1, true},
		{"TH2F", TH2F, true, 2, false},
		{"TH2D", TH2D, true, 2, false},
		{"TProfile2D", TProfile2D, true, 2, true},
		{"th1f", KindInvalid, false, 0, false},
		{"TH3F", KindInvalid, false, 0, false},
		{"", KindInvalid, false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseKind(tt.token)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.dim, got.Dim())
			require.Equal(t, tt.profile, got.IsProfile())
			if ok {
				require.Equal(t, tt.token, got.String())
			}
		})
	}
}

func TestKind_TextRoundTrip(t *testing.T) {
	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("TProfile2D")))
	require.Equal(t, TProfile2D, k)

	err := k.UnmarshalText([]byte("TGraph"))
	require.ErrorIs(t, err, ErrKind)
	require.Equal(t, TProfile2D, k, "failed unmarshal must not change the kind")
}

package hist

// Kind identifies the concrete type of a histogram object.
type Kind uint8

const (
	KindInvalid Kind = iota
	TH1F
	TH1D
	TProfile
	TH2F
	TH2D
	TProfile2D
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	TH1F:        "TH1F",
	TH1D:        "TH1D",
	TProfile:    "TProfile",
	TH2F:        "TH2F",
	TH2D:        "TH2D",
	TProfile2D:  "TProfile2D",
}

// Kinds lists every valid kind in declaration order.
var Kinds = []Kind{TH1F, TH1D, TProfile, TH2F, TH2D, TProfile2D}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// ParseKind maps a type token such as "TH1F" to its Kind.
// Matching is exact; the tokens are case-sensitive class names.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if kindNames[k] == s {
			return k, true
		}
	}
	return KindInvalid, false
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k > KindInvalid && k <= TProfile2D
}

// Dim returns the number of axes: 1 or 2, or 0 for an invalid kind.
func (k Kind) Dim() int {
	switch k {
	case TH1F, TH1D, TProfile:
		return 1
	case TH2F, TH2D, TProfile2D:
		return 2
	default:
		return 0
	}
}

// IsProfile reports whether k accumulates means rather than counts.
func (k Kind) IsProfile() bool {
	return k == TProfile || k == TProfile2D
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, ok := ParseKind(string(b))
	if !ok {
		return &KindError{Token: string(b)}
	}
	*k = parsed
	return nil
}

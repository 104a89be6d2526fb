package model

// Validity is the diagnostic recorded by the last IsValidMove call.
type Validity uint8

const (
	Unchecked Validity = iota
	Valid
	Invalid
	MovingIntoCheck
	StayingInCheck
)

func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case MovingIntoCheck:
		return "movingIntoCheck"
	case StayingInCheck:
		return "stayingInCheck"
	default:
		return "unchecked"
	}
}

// Message is the text shown to a player for a rejected move. Valid and
// Unchecked have none.
func (v Validity) Message() string {
	switch v {
	case Invalid:
		return "Invalid move."
	case MovingIntoCheck:
		return "Invalid -- cannot move into check."
	case StayingInCheck:
		return "Invalid -- must move out of check."
	default:
		return ""
	}
}

func (v Validity) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

package secded

import "fmt"

//Status is the outcome of decoding a received word.
type Status int

const (
	StatusValid Status = iota
	StatusCorrected
	StatusUncorrectable
)

var statusNames = map[Status]string{
	StatusValid:         "VALID",
	StatusCorrected:     "CORRECTED",
	StatusUncorrectable: "UNCORRECTABLE",
}

func (s Status) String() string {
	name, has := statusNames[s]
	if !has {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return name
}

func (s Status) MarshalText() ([]byte, error) {
	name, has := statusNames[s]
	if !has {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}
	return []byte(name), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", string(text))
}

//Result is one of Valid, Corrected or Uncorrectable.
type Result interface {
	Status() Status
	isResult()
}

//Valid is returned when the received word was a codeword.
type Valid struct {
	Data []int
}

//Corrected is returned when a single bit error was repaired. Position is the index of the
// flipped bit in the received word, the overall parity bit included.
type Corrected struct {
	Data     []int
	Position int
}

//Uncorrectable is returned when two or more bits were flipped. No data is recoverable.
type Uncorrectable struct{}

func (Valid) Status() Status         { return StatusValid }
func (Corrected) Status() Status     { return StatusCorrected }
func (Uncorrectable) Status() Status { return StatusUncorrectable }

func (Valid) isResult()         {}
func (Corrected) isResult()     {}
func (Uncorrectable) isResult() {}

//Message returns the decoded data word, ok is false for Uncorrectable.
func Message(r Result) (data []int, ok bool) {
	switch v := r.(type) {
	case Valid:
		return v.Data, true
	case Corrected:
		return v.Data, true
	default:
		return nil, false
	}
}

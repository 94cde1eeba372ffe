package adapter

import (
	"encoding/json"
)

// JSON encodes event payloads, JSONB documents and CLI reports.
// Kept behind an interface so encoding failures can be injected in tests.
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	// MarshalIndent is used for output read by people, such as the rpc-monitor -once report
	MarshalIndent(v interface{}, prefix, indent string) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type stdJSON struct{}

// NewJSON returns the encoding/json backed implementation
func NewJSON() JSON {
	return stdJSON{}
}

func (stdJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (stdJSON) MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

func (stdJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

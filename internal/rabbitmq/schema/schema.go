package schema

import (
	"encoding/json"
)

type ResetEmail struct {
	To      string
	Subject string
	Body    string
}

func (m *ResetEmail) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *ResetEmail) Unmarshal(data []byte) error {
	return json.Unmarshal(data, m)
}

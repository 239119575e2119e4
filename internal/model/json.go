package model

import (
	"bytes"
	"encoding/json"
)

// jsonIndent is the indentation used for rendered record lists.
const jsonIndent = "    "

// MarshalRecords renders records as an indented JSON array.
//
// Non-ASCII text and characters like <, > and & are written literally.
// The output has no trailing newline and an empty or nil slice renders
// as "[]". The same records always produce the same bytes.
func MarshalRecords(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ID is an identifier the ERP sends either as a JSON number or a string.
// It is kept as text and written back as a number when it is a plain
// integer.
type ID string

// NewOrderID marks an order that has never been persisted.
const NewOrderID ID = "000"

func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is empty.
func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// IsNewOrder reports whether the id denotes an unsaved order.
func (id ID) IsNewOrder() bool {
	return id.IsZero() || id == NewOrderID
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	s := string(id)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(n, 10) == s {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

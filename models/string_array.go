package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringArray stores a list of URLs as a JSON column.
type StringArray []string

// Scan implements sql.Scanner so gorm can read the column back.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("unsupported type for StringArray")
	}
}

// Value implements driver.Valuer so gorm can write the column.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON is a JSONB-backed free-form object column
type JSON map[string]interface{}

// Value implements driver.Valuer for JSONB columns
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner for JSONB columns
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for json column: %T", value)
	}

	return json.Unmarshal(data, j)
}

// StringArray is a JSONB-backed list of strings
type StringArray []string

// Value implements driver.Valuer for JSONB columns
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB columns
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for string array column: %T", value)
	}

	return json.Unmarshal(data, a)
}

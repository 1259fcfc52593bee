package domain

import (
	"database/sql/driver"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// StringList stores a set of variant option strings as a JSON text column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := jsoniter.MarshalToString([]string(s))
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *StringList) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported column type %T for StringList", src)
	}
	if len(data) == 0 {
		*s = nil
		return nil
	}
	return jsoniter.Unmarshal(data, (*[]string)(s))
}

// Contains reports whether v is one of the listed options.
func (s StringList) Contains(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

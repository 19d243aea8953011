package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ExtraData хранит свободные данные сущности (колонка JSONB extra_data).
type ExtraData map[string]interface{}

func (e ExtraData) Value() (driver.Value, error) {
	if e == nil {
		return nil, nil
	}
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal extra_data: %w", err)
	}
	// lib/pq передаёт []byte как bytea, поэтому для jsonb отдаём строку.
	return string(b), nil
}

func (e *ExtraData) Scan(src interface{}) error {
	if src == nil {
		*e = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("extra_data: unsupported source type")
	}
	if len(raw) == 0 {
		*e = nil
		return nil
	}
	return json.Unmarshal(raw, e)
}

// String returns the value under key when it is a string.
func (e ExtraData) String(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	s, ok := e[key].(string)
	return s, ok
}

// Merge returns a copy of e with every key of patch written over it.
func (e ExtraData) Merge(patch ExtraData) ExtraData {
	out := make(ExtraData, len(e)+len(patch))
	for k, v := range e {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// Clone returns a shallow copy, nil for nil.
func (e ExtraData) Clone() ExtraData {
	if e == nil {
		return nil
	}
	return ExtraData{}.Merge(e)
}

package models

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"

	"github.com/goccy/go-json"
)

// UtilityRate là đơn giá một loại chi phí dịch vụ
type UtilityRate struct {
	Type string  `json:"type"`
	Rate float64 `json:"rate"`
}

// UtilityRateEntry giữ một cặp key / giá trị; Value nil khi backend trả về null hoặc sai kiểu
type UtilityRateEntry struct {
	Key   string
	Value *UtilityRate
}

// UtilityRates giữ nguyên thứ tự key như trong JSON gốc
type UtilityRates []UtilityRateEntry

func (u *UtilityRates) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		*u = nil
		return nil
	}

	// encoding/json cho phép đọc từng token để giữ thứ tự key
	dec := stdjson.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}

	var entries UtilityRates
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("utilityRates: unexpected key %v", tok)
		}

		var raw stdjson.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		entry := UtilityRateEntry{Key: key}
		if isObject(raw) {
			var rate UtilityRate
			if err := json.Unmarshal(raw, &rate); err == nil {
				entry.Value = &rate
			}
		}
		entries = append(entries, entry)
	}

	*u = entries
	return nil
}

func (u UtilityRates) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range u {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get trả về đơn giá theo key
func (u UtilityRates) Get(key string) (*UtilityRate, bool) {
	for _, entry := range u {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

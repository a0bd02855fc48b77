package models

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Room là bản ghi phòng đã chuẩn hóa để hiển thị trên trang chi tiết
type Room struct {
	ID            string         `json:"_id"`
	Name          string         `json:"name,omitempty"`
	Type          string         `json:"type,omitempty"`
	Price         float64        `json:"price,omitempty"`
	FullAddress   string         `json:"fullAddress,omitempty"`
	Accommodation *Accommodation `json:"accommodation,omitempty"`
	Description   string         `json:"description,omitempty"`
	Capacity      int            `json:"capacity,omitempty"`
	Size          float64        `json:"size,omitempty"`
	CreatedAt     *time.Time     `json:"createdAt,omitempty"`
	IsAvailable   bool           `json:"isAvailable"`
	Images        []string       `json:"images,omitempty"`
	Amenities     []string       `json:"amenities,omitempty"`
	UtilityRates  UtilityRates   `json:"utilityRates,omitempty"`
	Owner         *Owner         `json:"owner,omitempty"`
}

type roomAlias Room

// các field số / ngày được đọc lỏng: sai kiểu thì bỏ qua thay vì làm hỏng cả bản ghi
var looseRoomFields = []string{"price", "capacity", "size", "createdAt", "isAvailable"}

func (r *Room) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	loose := make(map[string]json.RawMessage, len(looseRoomFields))
	for _, key := range looseRoomFields {
		if raw, ok := fields[key]; ok {
			loose[key] = raw
			delete(fields, key)
		}
	}

	rest, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	var alias roomAlias
	if err := json.Unmarshal(rest, &alias); err != nil {
		return err
	}

	alias.Price = parseLooseNumber(loose["price"])
	alias.Capacity = int(parseLooseNumber(loose["capacity"]))
	alias.Size = parseLooseNumber(loose["size"])
	alias.CreatedAt = parseLooseTime(loose["createdAt"])
	alias.IsAvailable = parseLooseBool(loose["isAvailable"])

	*r = Room(alias)
	return nil
}

// parseLooseNumber nhận số hoặc chuỗi số, còn lại trả về 0
func parseLooseNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return n
		}
	}
	return 0
}

var looseTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseLooseTime nhận RFC3339, ngày dạng 2006-01-02 hoặc epoch mili giây;
// không đọc được thì trả về nil để nơi hiển thị dùng thời điểm hiện tại
func parseLooseTime(raw json.RawMessage) *time.Time {
	if len(raw) == 0 {
		return nil
	}
	var ms float64
	if err := json.Unmarshal(raw, &ms); err == nil {
		return epochMillis(ms)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range looseTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	if ms, err := strconv.ParseFloat(s, 64); err == nil {
		return epochMillis(ms)
	}
	return nil
}

func epochMillis(ms float64) *time.Time {
	if ms == 0 {
		return nil
	}
	t := time.UnixMilli(int64(ms)).UTC()
	return &t
}

// parseLooseBool nhận true/false hoặc chuỗi "true"/"false"
func parseLooseBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		b, _ = strconv.ParseBool(strings.TrimSpace(s))
	}
	return b
}

// Accommodation là khu trọ chứa phòng; backend có thể trả về id (chưa populate) thay vì object
type Accommodation struct {
	ID      string   `json:"_id,omitempty"`
	Name    string   `json:"name,omitempty"`
	Address *Address `json:"address,omitempty"`
}

type accommodationAlias Accommodation

func (a *Accommodation) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		return nil
	}
	var alias accommodationAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*a = Accommodation(alias)
	return nil
}

// Address là địa chỉ theo phường / quận / thành phố
type Address struct {
	Street   string `json:"street,omitempty"`
	Ward     string `json:"ward,omitempty"`
	District string `json:"district,omitempty"`
	City     string `json:"city,omitempty"`
}

// Owner là thông tin liên hệ của chủ trọ
type Owner struct {
	ID     string `json:"_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type ownerAlias Owner

func (o *Owner) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		return nil
	}
	var alias ownerAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*o = Owner(alias)
	return nil
}

func isObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

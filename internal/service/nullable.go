package service

import "encoding/json"

// NullableID distinguishes the three states of a foreign-key field in a
// partial update payload: absent (Set=false, field untouched), explicit null
// (Set=true, ID=nil, reference cleared) and a value (Set=true, ID non-nil,
// reference re-resolved). encoding/json cannot tell absent from null with a
// plain pointer, hence this wrapper.
type NullableID struct {
	Set bool
	ID  *uint
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.ID = nil
		return nil
	}
	return json.Unmarshal(data, &n.ID)
}

func (n NullableID) MarshalJSON() ([]byte, error) {
	if !n.Set || n.ID == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.ID)
}

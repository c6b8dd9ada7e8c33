package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RoomRef is a room reference as it arrives in JSON payloads. Clients send it
// in three shapes: a bare id, an id as a string, or a whole embedded room
// object. It is resolved to a plain id here, before anything compares it.
type RoomRef struct {
	ID uint
}

func (r *RoomRef) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		r.ID = 0
		return nil
	}

	switch s[0] {
	case '{':
		var embedded struct {
			ID uint `json:"id"`
		}
		if err := json.Unmarshal(data, &embedded); err != nil {
			return fmt.Errorf("invalid room reference: %w", err)
		}
		r.ID = embedded.ID
		return nil
	case '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid room reference: %w", err)
		}
		id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			return fmt.Errorf("invalid room reference %q", raw)
		}
		r.ID = uint(id)
		return nil
	default:
		id, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid room reference %s", s)
		}
		r.ID = uint(id)
		return nil
	}
}

func (r RoomRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

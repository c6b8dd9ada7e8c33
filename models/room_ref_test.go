package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRefUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint
		wantErr bool
	}{
		{name: "bare id", input: `5`, want: 5},
		{name: "id as string", input: `"7"`, want: 7},
		{name: "padded string", input: `" 12 "`, want: 12},
		{name: "embedded room object", input: `{"id":9,"roomNumber":"201","price":140}`, want: 9},
		{name: "null", input: `null`, want: 0},
		{name: "non numeric string", input: `"abc"`, wantErr: true},
		{name: "negative id", input: `-3`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref RoomRef
			err := json.Unmarshal([]byte(tt.input), &ref)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref.ID)
		})
	}
}

func TestRoomRefMarshalJSON(t *testing.T) {
	out, err := json.Marshal(RoomRef{ID: 42})
	require.NoError(t, err)
	assert.Equal(t, "42", string(out))
}

func TestRoomRefInsidePayload(t *testing.T) {
	var payload struct {
		RoomID RoomRef `json:"roomId"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"roomId":{"id":3,"roomType":"Deluxe"}}`), &payload))
	assert.Equal(t, uint(3), payload.RoomID.ID)
}

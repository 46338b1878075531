package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "calendar form",
			input: "2000-01-01",
			want:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 form",
			input: "1987-06-15T00:00:00Z",
			want:  time.Date(1987, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "not a date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, d.Time.Equal(tt.want))
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	t.Parallel()

	var payload struct {
		Birthday Date `json:"Birthday"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"Birthday":"2000-01-01"}`), &payload))
	assert.Equal(t, 2000, payload.Birthday.Year())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Birthday":"2000-01-01T00:00:00Z"}`, string(out))
}

package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	type payload struct {
		Inicio *Date `json:"fecha_inicio"`
		Fin    *Date `json:"fecha_fin"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"fecha_inicio":"2024-05-01","fecha_fin":null}`), &p))
	require.NotNil(t, p.Inicio)
	assert.Nil(t, p.Fin)
	assert.Equal(t, NewDate(2024, time.May, 1), *p.Inicio)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fecha_inicio":"2024-05-01","fecha_fin":null}`, string(out))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2023-12-31", want: NewDate(2023, time.December, 31)},
		{in: "2023-12-31T15:04:05Z", want: NewDate(2023, time.December, 31)},
		{in: "31/12/2023", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateAfter(t *testing.T) {
	a := NewDate(2024, time.January, 2)
	b := NewDate(2024, time.January, 1)

	assert.True(t, a.After(b))
	assert.False(t, b.After(a))
	assert.False(t, a.After(a))
}

func TestDatePgCodec(t *testing.T) {
	d := NewDate(2022, time.July, 15)

	v, err := d.DateValue()
	require.NoError(t, err)
	assert.True(t, v.Valid)

	var back Date
	require.NoError(t, back.ScanDate(v))
	assert.Equal(t, d, back)

	require.NoError(t, back.ScanDate(pgtype.Date{}))
	assert.True(t, back.IsZero())

	assert.Error(t, back.ScanDate(pgtype.Date{Valid: true, InfinityModifier: pgtype.Infinity}))
}

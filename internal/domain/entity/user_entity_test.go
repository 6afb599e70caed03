package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicViewStripsPassword(t *testing.T) {
	u := &User{
		ID:           "user-1",
		NameEN:       "Rahim Uddin",
		NIDNumber:    "1234567890",
		MobileNumber: "01712345678",
		Password:     "$2a$10$somebcrypthash",
		Balance:      50,
		BloodGroup:   "O+",
		Birthplace:   &Birthplace{Village: "Sonakanda", Zila: "Narayanganj"},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	view := u.PublicView()
	b, err := json.Marshal(view)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "somebcrypthash")
	assert.Contains(t, string(b), `"name_en":"Rahim Uddin"`)
	assert.Contains(t, string(b), `"balance":50`)
}

func TestPublicViewOmitsEmptyOptionals(t *testing.T) {
	u := &User{ID: "user-1", NameEN: "Rahim", NIDNumber: "1", MobileNumber: "0171"}

	b, err := json.Marshal(u.PublicView())
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &out))
	assert.NotContains(t, out, "name_bn")
	assert.NotContains(t, out, "birthplace")
	assert.NotContains(t, out, "permanent_address")
	// required identity and balance always serialize
	assert.Contains(t, out, "mobile_number")
	assert.Contains(t, out, "balance")
}

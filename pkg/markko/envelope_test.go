package markko

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeDecode(t *testing.T) {
	t.Parallel()

	env := &Envelope{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"data": {"id": "v-1", "store_name": "Pottery Barn"},
		"meta": {"total": 1}
	}`), env))

	var vendor struct {
		ID        string `json:"id"`
		StoreName string `json:"store_name"`
	}
	require.NoError(t, env.Decode(&vendor))
	assert.Equal(t, "Pottery Barn", vendor.StoreName)

	// An empty data payload leaves dst untouched.
	empty := &Envelope{}
	var out map[string]any
	require.NoError(t, empty.Decode(&out))
	assert.Nil(t, out)
}

func TestEnvelopeAPIError(t *testing.T) {
	t.Parallel()

	t.Run("envelope code wins", func(t *testing.T) {
		t.Parallel()

		env := &Envelope{Error: true, Message: "Invalid coupon applied.", Code: 409}
		err := env.apiError(200)
		assert.Equal(t, 409, err.Code)
		assert.Equal(t, "Invalid coupon applied.", err.Message)
	})

	t.Run("fallback code fills in", func(t *testing.T) {
		t.Parallel()

		env := &Envelope{Error: true, Message: "Something went wrong."}
		assert.Equal(t, 500, env.apiError(500).Code)
	})
}

func TestAPIErrorError(t *testing.T) {
	t.Parallel()

	err := &APIError{Message: "Not found", Code: 404}
	assert.Equal(t, "markko: Not found (code 404)", err.Error())
	assert.False(t, err.IsValidation())

	err = &APIError{Message: "Invalid", Code: 422, Errors: map[string][]string{"name": {"required"}}}
	assert.True(t, err.IsValidation())
}

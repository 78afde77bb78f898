package markko

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListOptionsValues(t *testing.T) {
	t.Parallel()

	t.Run("empty options produce no parameters", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, ListOptions{}.values())
	})

	t.Run("all fields map to query parameters", func(t *testing.T) {
		t.Parallel()

		v := ListOptions{
			Page:     3,
			Paginate: 25,
			Sort:     "created_at,desc",
			With:     "vendor,images",
			Search:   "mug",
		}.values()

		assert.Equal(t, "3", v.Get("page"))
		assert.Equal(t, "25", v.Get("paginate"))
		assert.Equal(t, "created_at,desc", v.Get("sort"))
		assert.Equal(t, "vendor,images", v.Get("with"))
		assert.Equal(t, "mug", v.Get("search"))
	})
}

func TestGetOptionsValues(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetOptions{}.values())
	assert.Equal(t, "vendor", GetOptions{With: "vendor"}.values().Get("with"))
}

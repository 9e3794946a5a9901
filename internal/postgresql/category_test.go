package postgresql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFindQuery(t *testing.T) {
	t.Parallel()

	t.Run("read path is active only", func(t *testing.T) {
		t.Parallel()

		query := categoryFindQuery(true)

		assert.Contains(t, query, "WHERE c.id = $1 AND c.is_active")
	})

	t.Run("post-write read returns inactive rows too", func(t *testing.T) {
		t.Parallel()

		query := categoryFindQuery(false)

		assert.Contains(t, query, "WHERE c.id = $1")
		assert.False(t, strings.Contains(query, "AND c.is_active"),
			"creating or updating a category with isActive=false must still return the row")
	})
}

package sort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastToSortDirection(t *testing.T) {
	assert.Equal(t, Ascending, CastToSortDirection("asc"))
	assert.Equal(t, Ascending, CastToSortDirection("ASC"))
	assert.Equal(t, Descending, CastToSortDirection("desc"))

	// anything unrecognized falls back to Undefined, which the
	// repositories resolve to their own default order
	assert.Equal(t, Undefined, CastToSortDirection("sideways"))
	assert.Equal(t, Undefined, CastToSortDirection(""))
}

package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/todofeed/internal/model"
)

var users = []model.UserSummary{
	{ID: 1, Username: "Bret"},
	{ID: 2, Username: "Antonette"},
	{ID: 5, Username: "bob"},
}

func TestLookupKnownAndUnknown(t *testing.T) {
	d := Build(users)

	name, ok := d.Lookup(5)
	assert.True(t, ok)
	assert.Equal(t, "bob", name)

	name, ok = d.Lookup(42)
	assert.False(t, ok)
	assert.Empty(t, name)
	assert.Empty(t, d.Name(42))
	assert.Equal(t, 3, d.Len())
}

func TestZeroValueIsEmpty(t *testing.T) {
	var d Directory
	_, ok := d.Lookup(1)
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
	assert.True(t, d.Equal(Build(nil)))
}

func TestBuildIsIdempotent(t *testing.T) {
	assert.True(t, Build(users).Equal(Build(users)))
}

func TestLaterDuplicateWins(t *testing.T) {
	d := Build([]model.UserSummary{{ID: 1, Username: "old"}, {ID: 1, Username: "new"}})
	assert.Equal(t, "new", d.Name(1))
	assert.Equal(t, 1, d.Len())
}

func TestEqualDetectsDifferences(t *testing.T) {
	a := Build(users)
	assert.False(t, a.Equal(Build(users[:2])))
	assert.False(t, a.Equal(Build([]model.UserSummary{
		{ID: 1, Username: "Bret"},
		{ID: 2, Username: "Antonette"},
		{ID: 5, Username: "alice"},
	})))
}

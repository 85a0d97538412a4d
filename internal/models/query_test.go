package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortSpecCycle(t *testing.T) {
	var s SortSpec
	assert.False(t, s.IsActive())

	s = s.Cycle("price")
	assert.Equal(t, SortSpec{Field: "price", Direction: SortAsc}, s)

	s = s.Cycle("price")
	assert.Equal(t, SortSpec{Field: "price", Direction: SortDesc}, s)

	// Third activation on the same attribute clears the sort entirely.
	s = s.Cycle("price")
	assert.False(t, s.IsActive())
}

func TestSortSpecCycleSwitchesField(t *testing.T) {
	s := SortSpec{Field: "price", Direction: SortDesc}

	// A different attribute starts over ascending.
	s = s.Cycle("name")
	assert.Equal(t, SortSpec{Field: "name", Direction: SortAsc}, s)
}

func TestFilterSetSetAndClear(t *testing.T) {
	f := FilterSet{}

	f.Set("brand", "Acme")
	assert.Equal(t, "Acme", f["brand"])

	f.Set("brand", "Umbra")
	assert.Equal(t, "Umbra", f["brand"])

	// Clearing removes the key so it never reaches the outbound request.
	f.Set("brand", "")
	_, ok := f["brand"]
	assert.False(t, ok)
	assert.Empty(t, f)
}

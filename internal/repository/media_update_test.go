package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func strp(s string) *string { return &s }

func TestMediaUpdateEmpty(t *testing.T) {
	assert.True(t, MediaUpdate{}.Empty())
	assert.False(t, MediaUpdate{Title: strp("x")}.Empty())
	assert.False(t, MediaUpdate{Tags: &[]string{}}.Empty())
}

func TestSetFieldsOnlySuppliedFields(t *testing.T) {
	set := setFields(MediaUpdate{
		Title:    strp("New title"),
		Category: strp("premium"),
	})
	assert.Equal(t, bson.M{"title": "New title", "category": "premium"}, set)
}

func TestSetFieldsSupportsClearing(t *testing.T) {
	// A pointer to the empty string clears the field; a nil pointer keeps it.
	set := setFields(MediaUpdate{Description: strp("")})
	assert.Equal(t, bson.M{"description": ""}, set)
}

func TestSetFieldsTags(t *testing.T) {
	tags := []string{"a", "b"}
	set := setFields(MediaUpdate{Tags: &tags})
	assert.Equal(t, bson.M{"tags": tags}, set)

	empty := []string{}
	set = setFields(MediaUpdate{Tags: &empty})
	assert.Equal(t, bson.M{"tags": empty}, set)
}

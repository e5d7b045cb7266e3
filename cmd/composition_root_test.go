package cmd

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositionRoot_SharesRunAssignmentHandler(t *testing.T) {
	t.Parallel()

	root := NewCompositionRoot(Config{}, nil)

	first := root.CreateRunAssignmentCommandHandler()
	second := root.CreateRunAssignmentCommandHandler()

	// Every consumer must end up on the same serialization guard, or two
	// dispatch runs could execute concurrently against one partner pool.
	firstGuard := reflect.ValueOf(first).FieldByName("mu").Pointer()
	secondGuard := reflect.ValueOf(second).FieldByName("mu").Pointer()

	assert.Equal(t, firstGuard, secondGuard)
}

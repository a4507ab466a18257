package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	assert.False(t, f.Has(ActionFire), "zero frame has no actions")

	f.Set(ActionFire)
	f.Set(ActionLeft)
	f.AddLook(2, -1)
	f.AddLook(1, 0)

	clone := f.Clone()
	f.Clear()

	assert.False(t, f.Has(ActionFire))
	assert.Zero(t, f.LookDX)
	assert.True(t, clone.Has(ActionFire))
	assert.True(t, clone.Has(ActionLeft))
	assert.Equal(t, 3.0, clone.LookDX)
	assert.Equal(t, -1.0, clone.LookDY)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Weapon3", ActionWeapon3.String())
	assert.Equal(t, "Unknown", Action(999).String())
}

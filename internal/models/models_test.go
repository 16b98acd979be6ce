package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtocolIndexDefaultsToRDP(t *testing.T) {
	var s Settings
	assert.Equal(t, 1, s.ProtocolIndex())
	assert.Equal(t, ProtocolRDP, ProtocolAt(s.ProtocolIndex()))

	zero := 0
	s.LastProtocolIndex = &zero
	assert.Equal(t, ProtocolSSH, ProtocolAt(s.ProtocolIndex()))
}

func TestProtocolAtOutOfRange(t *testing.T) {
	assert.Equal(t, ProtocolRDP, ProtocolAt(-1))
	assert.Equal(t, ProtocolRDP, ProtocolAt(7))
	assert.Equal(t, 0, IndexOf(ProtocolSSH))
	assert.Equal(t, 1, IndexOf(Protocol("VNC")))
}

func TestHasExplicitSize(t *testing.T) {
	w, h := 1280, 720
	assert.True(t, (&ConnectionRequest{Width: &w, Height: &h}).HasExplicitSize())
	assert.False(t, (&ConnectionRequest{Width: &w}).HasExplicitSize())
	assert.False(t, (&ConnectionRequest{}).HasExplicitSize())
}

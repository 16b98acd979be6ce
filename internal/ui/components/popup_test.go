package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopupRenderContainsTitleAndMessage(t *testing.T) {
	p := NewPopup(PopupError, "Error", "failed to read template", 50, 7, 0, 0)
	out := p.Render()

	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "failed to read template")
	assert.Contains(t, out, "ESC/ENTER - Close")
}

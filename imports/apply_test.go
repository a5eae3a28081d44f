package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOrdersActions(t *testing.T) {
	src := []byte("abcdef")
	out := Apply(src, []Action{
		{Span: span(4, 5)},
		{Span: span(0, 1), Text: "X"},
		{Span: span(2, 3)},
	})
	assert.Equal(t, "Xbdf", string(out))
}

func TestApplyEmptyActionList(t *testing.T) {
	src := []byte("unchanged")
	assert.Equal(t, "unchanged", string(Apply(src, nil)))
}

func TestApplyInsertion(t *testing.T) {
	src := []byte("ab")
	out := Apply(src, []Action{{Span: span(1, 1), Text: "-"}})
	assert.Equal(t, "a-b", string(out))
}

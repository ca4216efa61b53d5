package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineIndex(t *testing.T) {
	li := NewLineIndex("a\nb\nc\nd")
	assert.Equal(t, 4, li.Len())
	assert.Equal(t, "b", li.Line(1))
	assert.Equal(t, "", li.Line(99), "越界访问应返回空串")
}

func TestLineIndexWindow(t *testing.T) {
	li := NewLineIndex("a\nb\nc\nd\ne")
	assert.Equal(t, []string{"b", "c", "d"}, li.Window(2, 1), "窗口应包含前后各radius行")
	assert.Equal(t, []string{"a", "b"}, li.Window(0, 1), "窗口应在文本边界处截断")
	assert.Equal(t, "c d e", li.Context(3, 1), "上下文应为窗口行的空格拼接")
}

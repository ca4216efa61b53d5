package parser

import "strings"

// LineIndex 按行索引的不可变文本视图
// 提供带边界检查的邻近行窗口访问，避免隐式的全局游标
type LineIndex struct {
	lines []string
}

// NewLineIndex 根据原始文本构造行索引
func NewLineIndex(text string) *LineIndex {
	return &LineIndex{lines: strings.Split(text, "\n")}
}

// Len 返回总行数
func (li *LineIndex) Len() int {
	return len(li.lines)
}

// Line 返回第i行，越界时返回空字符串
func (li *LineIndex) Line(i int) string {
	if i < 0 || i >= len(li.lines) {
		return ""
	}
	return li.lines[i]
}

// Lines 返回全部行
func (li *LineIndex) Lines() []string {
	return li.lines
}

// Window 返回以第i行为中心、半径为radius的邻近行切片（含第i行本身）
func (li *LineIndex) Window(i, radius int) []string {
	start := i - radius
	if start < 0 {
		start = 0
	}
	end := i + radius + 1
	if end > len(li.lines) {
		end = len(li.lines)
	}
	if start >= end {
		return nil
	}
	return li.lines[start:end]
}

// Context 把第i行附近的行拼成一段上下文文本，忽略空行
func (li *LineIndex) Context(i, radius int) string {
	var parts []string
	for _, line := range li.Window(i, radius) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

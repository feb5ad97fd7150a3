package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureText 测量单行文本宽度
func MeasureText(s string, face text.Face) float64 {
	if s == "" || face == nil {
		return 0
	}
	return text.Advance(s, face)
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，按字符强制断行
//   - 文本中的 '\n' 总是断行
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if textStr == "" || face == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, face, maxWidth)...)
	}
	return lines
}

func wrapParagraph(paragraph string, face text.Face, maxWidth float64) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if MeasureText(candidate, face) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}

		// 单词本身超宽：按字符强制断行
		for MeasureText(word, face) > maxWidth {
			head, tail := splitToWidth(word, face, maxWidth)
			lines = append(lines, head)
			word = tail
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitToWidth 取 s 能放进 maxWidth 的最长前缀（至少一个字符）
func splitToWidth(s string, face text.Face, maxWidth float64) (string, string) {
	end := 0
	for end < len(s) {
		_, size := utf8.DecodeRuneInString(s[end:])
		if end > 0 && MeasureText(s[:end+size], face) > maxWidth {
			break
		}
		end += size
	}
	return s[:end], s[end:]
}

// WrapSpans 对带颜色的文本片段按宽度换行
// 断行规则同 WrapText，颜色在断行后保持不变
func WrapSpans(spans []TextSpan, face text.Face, maxWidth float64) [][]TextSpan {
	type word struct {
		parts []TextSpan // 一个单词可能跨多个颜色片段
		brk   bool       // 强制换行标记
	}

	// 拆分为单词（保留单词内部的颜色切换）
	var words []word
	var cur word
	flush := func() {
		if len(cur.parts) > 0 {
			words = append(words, cur)
			cur = word{}
		}
	}
	for _, span := range spans {
		start := 0
		for i, r := range span.Text {
			if r == ' ' || r == '\n' {
				if i > start {
					cur.parts = append(cur.parts, TextSpan{Text: span.Text[start:i], Color: span.Color})
				}
				flush()
				if r == '\n' {
					words = append(words, word{brk: true})
				}
				start = i + 1
			}
		}
		if start < len(span.Text) {
			cur.parts = append(cur.parts, TextSpan{Text: span.Text[start:], Color: span.Color})
		}
	}
	flush()

	wordText := func(w word) string {
		var sb strings.Builder
		for _, p := range w.parts {
			sb.WriteString(p.Text)
		}
		return sb.String()
	}

	var lines [][]TextSpan
	var line []TextSpan
	lineText := ""
	for _, w := range words {
		if w.brk {
			lines = append(lines, line)
			line, lineText = nil, ""
			continue
		}

		wt := wordText(w)
		candidate := wt
		if lineText != "" {
			candidate = lineText + " " + wt
		}
		if lineText != "" && face != nil && maxWidth > 0 && MeasureText(candidate, face) > maxWidth {
			lines = append(lines, line)
			line, lineText = nil, ""
			candidate = wt
		}

		if lineText != "" {
			line = appendSpan(line, TextSpan{Text: " ", Color: line[len(line)-1].Color})
		}
		for _, p := range w.parts {
			line = appendSpan(line, p)
		}
		lineText = candidate
	}
	if len(line) > 0 || len(lines) == 0 {
		lines = append(lines, line)
	}
	return lines
}

// appendSpan 追加片段，与前一片段同色时合并
func appendSpan(line []TextSpan, s TextSpan) []TextSpan {
	if n := len(line); n > 0 && line[n-1].Color == s.Color {
		line[n-1].Text += s.Text
		return line
	}
	return append(line, s)
}

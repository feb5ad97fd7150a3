package utils

import (
	"image/color"
	"strings"
)

// TextSpan 一段同色文本
type TextSpan struct {
	Text  string
	Color color.RGBA
}

// ParseMarkup 解析简单的 HTML 风格标记文本
//
// 支持：
//   - <FONT COLOR='#RRGGBB'>...</FONT>（可嵌套，关闭后恢复外层颜色）
//   - <BR> 换行
//
// 其它标签会被丢弃，只保留其中的文本。无法解析的颜色沿用外层颜色。
// 相邻的同色片段会被合并。
func ParseMarkup(s string, base color.RGBA) []TextSpan {
	spans := make([]TextSpan, 0, 4)
	stack := []color.RGBA{base}

	appendText := func(t string) {
		if t == "" {
			return
		}
		t = unescapeEntities(t)
		cur := stack[len(stack)-1]
		if n := len(spans); n > 0 && spans[n-1].Color == cur {
			spans[n-1].Text += t
			return
		}
		spans = append(spans, TextSpan{Text: t, Color: cur})
	}

	for len(s) > 0 {
		open := strings.IndexByte(s, '<')
		if open < 0 {
			appendText(s)
			break
		}
		appendText(s[:open])

		end := strings.IndexByte(s[open:], '>')
		if end < 0 {
			// 未闭合的标签按普通文本处理
			appendText(s[open:])
			break
		}
		tag := s[open+1 : open+end]
		s = s[open+end+1:]

		name, attrs := splitTag(tag)
		switch name {
		case "font":
			c := stack[len(stack)-1]
			if v, ok := attrs["color"]; ok {
				if parsed, err := ParseColor(v); err == nil {
					c = parsed
				}
			}
			stack = append(stack, c)
		case "/font":
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case "br", "br/":
			appendText("\n")
		}
	}

	return spans
}

// StripMarkup 去掉所有标记，只返回纯文本
func StripMarkup(s string) string {
	var sb strings.Builder
	for _, span := range ParseMarkup(s, color.RGBA{}) {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

// splitTag 将标签内容拆分为小写标签名和属性表
func splitTag(tag string) (string, map[string]string) {
	tag = strings.TrimSpace(tag)
	fields := strings.Fields(tag)
	if len(fields) == 0 {
		return "", nil
	}

	name := strings.ToLower(fields[0])
	attrs := make(map[string]string)
	rest := strings.TrimSpace(tag[len(fields[0]):])
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq < 0 {
			break
		}
		key := strings.ToLower(strings.TrimSpace(rest[:eq]))
		rest = strings.TrimSpace(rest[eq+1:])

		var val string
		if rest != "" && (rest[0] == '\'' || rest[0] == '"') {
			q := rest[0]
			closeIdx := strings.IndexByte(rest[1:], q)
			if closeIdx < 0 {
				val, rest = rest[1:], ""
			} else {
				val, rest = rest[1:1+closeIdx], rest[closeIdx+2:]
			}
		} else {
			sp := strings.IndexByte(rest, ' ')
			if sp < 0 {
				val, rest = rest, ""
			} else {
				val, rest = rest[:sp], rest[sp:]
			}
		}
		attrs[key] = val
		rest = strings.TrimSpace(rest)
	}
	return name, attrs
}

var entityReplacer = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", "\"", "&#39;", "'", "&amp;", "&")

func unescapeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return entityReplacer.Replace(s)
}

package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// dateFormatCache remembers which style indexes carry a date or time
// number format.
type dateFormatCache struct {
	f      *excelize.File
	styles map[int]bool
}

func newDateFormatCache(f *excelize.File) *dateFormatCache {
	return &dateFormatCache{f: f, styles: make(map[int]bool)}
}

// isDateCell reports whether a numeric cell is displayed as a date or time.
func (c *dateFormatCache) isDateCell(sheetName, cellName string) (bool, error) {
	styleIdx, err := c.f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return false, err
	}
	if isDate, ok := c.styles[styleIdx]; ok {
		return isDate, nil
	}

	style, err := c.f.GetStyle(styleIdx)
	if err != nil {
		return false, err
	}
	isDate := style != nil && isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	c.styles[styleIdx] = isDate
	return isDate, nil
}

// isDateNumFmt reports whether a number format renders a date or time.
// Built-in ids 14-22 and 45-47 are date/time formats; custom formats are
// scanned for date tokens.
func isDateNumFmt(numFmt int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	return (numFmt >= 14 && numFmt <= 22) || (numFmt >= 45 && numFmt <= 47)
}

// isDateFormatCode looks for y, m, d, h or s outside quoted text, escaped
// characters and bracketed sections. Elapsed-time brackets such as [h] and
// [mm] count as time tokens; colors and locales such as [Red] and [$-409]
// do not.
func isDateFormatCode(code string) bool {
	section := code
	if i := strings.IndexByte(code, ';'); i >= 0 {
		section = code[:i]
	}

	for i := 0; i < len(section); i++ {
		switch ch := section[i]; ch {
		case '"':
			end := strings.IndexByte(section[i+1:], '"')
			if end < 0 {
				return false
			}
			i += end + 1
		case '\\', '_', '*':
			i++
		case '[':
			end := strings.IndexByte(section[i+1:], ']')
			if end < 0 {
				return false
			}
			if isElapsedTime(section[i+1 : i+1+end]) {
				return true
			}
			i += end + 1
		default:
			switch ch | 0x20 {
			case 'y', 'm', 'd', 'h', 's':
				return true
			}
		}
	}
	return false
}

func isElapsedTime(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range strings.ToLower(token) {
		if r != 'h' && r != 'm' && r != 's' {
			return false
		}
	}
	return true
}

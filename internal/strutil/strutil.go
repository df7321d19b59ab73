// Package strutil provides string utilities for case conversion and route
// naming used throughout the Wayfinder codebase.
package strutil

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a string to snake_case.
// Examples: userName -> user_name, UserName -> user_name, HTTPServer -> http_server
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s) + 4)

	for i, r := range s {
		if unicode.IsUpper(r) {
			// Add underscore before uppercase letter if:
			// - Not at the start
			// - Previous char is lowercase, OR
			// - Next char exists and is lowercase (handles "HTTPServer" -> "http_server")
			if i > 0 {
				prev := rune(s[i-1])
				if unicode.IsLower(prev) {
					result.WriteByte('_')
				} else if i+1 < len(s) && unicode.IsLower(rune(s[i+1])) {
					result.WriteByte('_')
				}
			}
			result.WriteRune(unicode.ToLower(r))
		} else if r == '-' || r == ' ' {
			result.WriteByte('_')
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToPascalCase converts a string to PascalCase.
// Examples: user_name -> UserName, user-name -> UserName
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))

	capitalizeNext := true
	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToCamelCase converts a string to lowerCamelCase.
// Examples: user_name -> userName, UserName -> userName
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// ExportedName converts a field name to an exported Go identifier for
// generated code. Common initialisms keep their conventional casing.
// Examples: id -> ID, articleId -> ArticleID, tag -> Tag
func ExportedName(s string) string {
	name := ToPascalCase(ToSnakeCase(s))
	for _, init := range []string{"Id", "Url", "Uri", "Api", "Http", "Json", "Uuid"} {
		upper := strings.ToUpper(init)
		if name == init {
			return upper
		}
		if strings.HasSuffix(name, init) {
			name = strings.TrimSuffix(name, init) + upper
		}
	}
	return name
}

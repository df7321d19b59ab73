package strutil

import "testing"

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"userName", "user_name"},
		{"UserName", "user_name"},
		{"HTTPServer", "http_server"},
		{"articleId", "article_id"},
		{"already_snake", "already_snake"},
		{"with-dash", "with_dash"},
		{"with space", "with_space"},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ToSnakeCase(tt.in); got != tt.want {
				t.Errorf("ToSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"user_name", "UserName"},
		{"user-name", "UserName"},
		{"article", "Article"},
		{"Article", "Article"},
		{"articleDetail", "ArticleDetail"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ToPascalCase(tt.in); got != tt.want {
				t.Errorf("ToPascalCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"user_name", "userName"},
		{"UserName", "userName"},
		{"article", "article"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ToCamelCase(tt.in); got != tt.want {
				t.Errorf("ToCamelCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExportedName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"id", "ID"},
		{"articleId", "ArticleID"},
		{"tag", "Tag"},
		{"imageUrl", "ImageURL"},
		{"uuid", "UUID"},
		{"darkMode", "DarkMode"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ExportedName(tt.in); got != tt.want {
				t.Errorf("ExportedName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

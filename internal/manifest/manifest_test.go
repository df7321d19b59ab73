package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wayfinder-nav/wayfinder/internal/descriptor"
	"github.com/wayfinder-nav/wayfinder/internal/wferr"
)

const validManifest = `
package: navroutes
namespace: shop

destinations:
  - name: Home
  - name: Article
    fields:
      - name: id
        type: int
      - name: tag
        type: string
        optional: true
  - name: Player
    namespace: media
    fields:
      - name: quality
        type: enum
        values: [low, high]
        optional: true
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if m.Package != "navroutes" {
		t.Errorf("Package = %q, want %q", m.Package, "navroutes")
	}
	if len(m.Destinations) != 3 {
		t.Fatalf("len(Destinations) = %d, want 3", len(m.Destinations))
	}

	home := m.Destinations[0]
	if home.Ref() != "shop.Home" {
		t.Errorf("default namespace not applied: Ref() = %q", home.Ref())
	}
	if len(home.Fields) != 0 {
		t.Errorf("Home should have no fields, got %d", len(home.Fields))
	}

	article := m.Destinations[1]
	if article.Ref() != "shop.Article" {
		t.Errorf("Ref() = %q, want shop.Article", article.Ref())
	}
	if f := article.Field("id"); f == nil || f.Kind != descriptor.KindInt || f.Optional {
		t.Errorf("id field = %+v, want required int", f)
	}
	if f := article.Field("tag"); f == nil || !f.Optional {
		t.Errorf("tag field = %+v, want optional string", f)
	}

	player := m.Destinations[2]
	if player.Ref() != "media.Player" {
		t.Errorf("explicit namespace should win over default: Ref() = %q", player.Ref())
	}
	if f := player.Field("quality"); f == nil || f.Kind != descriptor.KindEnum || len(f.EnumValues) != 2 {
		t.Errorf("quality field = %+v, want enum with two values", f)
	}
}

func TestParse_DefaultPackage(t *testing.T) {
	m, err := Parse([]byte("destinations:\n  - name: Home\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.Package != DefaultPackage {
		t.Errorf("Package = %q, want %q", m.Package, DefaultPackage)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code wferr.Code
	}{
		{
			"invalid yaml",
			"destinations: [",
			wferr.ErrManifestParse,
		},
		{
			"unknown top-level key",
			"pakage: routes\ndestinations:\n  - name: Home\n",
			wferr.ErrManifestParse,
		},
		{
			"unknown field key",
			"destinations:\n  - name: A\n    fields:\n      - name: id\n        type: int\n        nulable: true\n",
			wferr.ErrManifestParse,
		},
		{
			"bad package name",
			"package: Bad-Name\ndestinations:\n  - name: Home\n",
			wferr.ErrManifestParse,
		},
		{
			"no destinations",
			"package: routes\n",
			wferr.ErrManifestParse,
		},
		{
			"empty file",
			"",
			wferr.ErrManifestParse,
		},
		{
			"missing field type",
			"destinations:\n  - name: A\n    fields:\n      - name: id\n",
			wferr.ErrSchemaInvalid,
		},
		{
			"unknown field type",
			"destinations:\n  - name: A\n    fields:\n      - name: id\n        type: integer\n",
			wferr.ErrSchemaKind,
		},
		{
			"composite field type",
			"destinations:\n  - name: A\n    fields:\n      - name: author\n        type: record\n",
			wferr.ErrSchemaNesting,
		},
		{
			"values on non-enum",
			"destinations:\n  - name: A\n    fields:\n      - name: id\n        type: int\n        values: [a, b]\n",
			wferr.ErrSchemaInvalid,
		},
		{
			"duplicate destination",
			"destinations:\n  - name: Home\n  - name: Home\n",
			wferr.ErrSchemaDuplicate,
		},
		{
			"invalid destination name",
			"destinations:\n  - name: 9Lives\n",
			wferr.ErrSchemaInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() should have failed")
			}
			if !wferr.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (err: %v)", wferr.GetErrorCode(err), tt.code, err)
			}
		})
	}
}

func TestParse_UnknownTypeSuggestion(t *testing.T) {
	_, err := Parse([]byte("destinations:\n  - name: A\n    fields:\n      - name: id\n        type: strng\n"))
	if err == nil {
		t.Fatal("Parse() should have failed")
	}
	if !strings.Contains(err.Error(), "did you mean string?") {
		t.Errorf("error should suggest the close type name, got: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "navigation.yaml")
	if err := os.WriteFile(path, []byte(validManifest), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(m.Destinations) != 3 {
		t.Errorf("len(Destinations) = %d, want 3", len(m.Destinations))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if !wferr.Is(err, wferr.ErrManifestRead) {
		t.Errorf("code = %v, want ErrManifestRead", wferr.GetErrorCode(err))
	}
	if !strings.Contains(err.Error(), "nope.yaml") {
		t.Errorf("error should carry the file path, got: %v", err)
	}
}

func TestLoad_ParseErrorCarriesPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "navigation.yaml")
	if err := os.WriteFile(path, []byte("package: routes\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should fail for an empty manifest")
	}
	if !strings.Contains(err.Error(), "navigation.yaml") {
		t.Errorf("error should carry the file path, got: %v", err)
	}
}

func TestManifestRegistry(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	reg, err := m.Registry()
	if err != nil {
		t.Fatalf("Registry() error = %v", err)
	}
	if reg.Count() != 3 {
		t.Errorf("Count() = %d, want 3", reg.Count())
	}
	if _, err := reg.GetByRef("media.Player"); err != nil {
		t.Errorf("GetByRef(media.Player) error = %v", err)
	}
}

package route

import (
	"reflect"
	"testing"

	"github.com/wayfinder-nav/wayfinder/internal/descriptor"
	"github.com/wayfinder-nav/wayfinder/internal/wferr"
)

func articleDesc() *descriptor.Desc {
	return &descriptor.Desc{
		Name: "Article",
		Fields: []*descriptor.Field{
			{Name: "id", Kind: descriptor.KindInt},
			{Name: "tag", Kind: descriptor.KindString, Optional: true},
		},
	}
}

func playerDesc() *descriptor.Desc {
	return &descriptor.Desc{
		Namespace: "media",
		Name:      "Player",
		Fields: []*descriptor.Field{
			{Name: "trackId", Kind: descriptor.KindInt},
			{Name: "title", Kind: descriptor.KindString},
			{Name: "volume", Kind: descriptor.KindFloat, Optional: true},
			{Name: "muted", Kind: descriptor.KindBool, Optional: true},
			{Name: "quality", Kind: descriptor.KindEnum, Optional: true,
				EnumValues: []string{"low", "high", "lossless"}},
		},
	}
}

func TestBuildPattern(t *testing.T) {
	tests := []struct {
		name string
		desc *descriptor.Desc
		want string
	}{
		{
			"required and optional",
			articleDesc(),
			"Article/{id}?tag={tag}",
		},
		{
			"zero fields",
			&descriptor.Desc{Name: "Home"},
			"Home",
		},
		{
			"required only",
			&descriptor.Desc{Name: "Detail", Fields: []*descriptor.Field{
				{Name: "a", Kind: descriptor.KindString},
				{Name: "b", Kind: descriptor.KindInt},
			}},
			"Detail/{a}/{b}",
		},
		{
			"optional only",
			&descriptor.Desc{Name: "Search", Fields: []*descriptor.Field{
				{Name: "query", Kind: descriptor.KindString, Optional: true},
				{Name: "page", Kind: descriptor.KindInt, Optional: true},
			}},
			"Search?query={query}&page={page}",
		},
		{
			"namespaced",
			playerDesc(),
			"media/Player/{trackId}/{title}?volume={volume}&muted={muted}&quality={quality}",
		},
		{
			"nested namespace",
			&descriptor.Desc{Namespace: "settings.profile", Name: "Avatar",
				Fields: []*descriptor.Field{{Name: "userId", Kind: descriptor.KindInt}}},
			"settings/profile/Avatar/{userId}",
		},
		{
			"interleaved declaration order preserved per group",
			&descriptor.Desc{Name: "Mixed", Fields: []*descriptor.Field{
				{Name: "opt1", Kind: descriptor.KindString, Optional: true},
				{Name: "req1", Kind: descriptor.KindInt},
				{Name: "opt2", Kind: descriptor.KindString, Optional: true},
			}},
			"Mixed/{req1}?opt1={opt1}&opt2={opt2}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildPattern(tt.desc)
			if err != nil {
				t.Fatalf("BuildPattern() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildPattern() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPattern_Deterministic(t *testing.T) {
	d := playerDesc()
	first, err := BuildPattern(d)
	if err != nil {
		t.Fatalf("BuildPattern() error = %v", err)
	}
	for i := 0; i < 20; i++ {
		got, err := BuildPattern(d)
		if err != nil {
			t.Fatalf("BuildPattern() error = %v", err)
		}
		if got != first {
			t.Fatalf("BuildPattern() not deterministic: %q vs %q", first, got)
		}
	}
}

func TestBuildPattern_DuplicateFields(t *testing.T) {
	d := &descriptor.Desc{Name: "Broken", Fields: []*descriptor.Field{
		{Name: "id", Kind: descriptor.KindInt},
		{Name: "id", Kind: descriptor.KindString},
	}}

	_, err := BuildPattern(d)
	if err == nil {
		t.Fatal("BuildPattern() should reject duplicate field names")
	}
	if !wferr.Is(err, wferr.ErrSchemaDuplicate) {
		t.Errorf("code = %v, want ErrSchemaDuplicate", wferr.GetErrorCode(err))
	}
}

func TestBuildPattern_NestedComposite(t *testing.T) {
	d := &descriptor.Desc{Name: "Broken", Fields: []*descriptor.Field{
		{Name: "author", Kind: descriptor.KindRecord, Nested: &descriptor.Desc{Name: "Author"}},
	}}

	_, err := BuildPattern(d)
	if err == nil {
		t.Fatal("BuildPattern() should reject composite fields")
	}
	if !wferr.Is(err, wferr.ErrSchemaNesting) {
		t.Errorf("code = %v, want ErrSchemaNesting", wferr.GetErrorCode(err))
	}
}

func TestBuildArgs(t *testing.T) {
	args, err := BuildArgs(articleDesc())
	if err != nil {
		t.Fatalf("BuildArgs() error = %v", err)
	}

	want := []Arg{
		{Name: "id", Nullable: false, DefaultNull: false},
		{Name: "tag", Nullable: true, DefaultNull: true},
	}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("BuildArgs() = %+v, want %+v", args, want)
	}
}

func TestBuildArgs_OrderMatchesFields(t *testing.T) {
	d := playerDesc()
	args, err := BuildArgs(d)
	if err != nil {
		t.Fatalf("BuildArgs() error = %v", err)
	}

	if len(args) != len(d.Fields) {
		t.Fatalf("BuildArgs() returned %d args, want %d", len(args), len(d.Fields))
	}
	for i, f := range d.Fields {
		if args[i].Name != f.Name {
			t.Errorf("args[%d].Name = %q, want %q", i, args[i].Name, f.Name)
		}
		if args[i].Nullable != f.Optional {
			t.Errorf("args[%d].Nullable = %v, want %v", i, args[i].Nullable, f.Optional)
		}
		if args[i].DefaultNull != args[i].Nullable {
			t.Errorf("args[%d]: DefaultNull must equal Nullable", i)
		}
	}
}

func TestBuildArgs_ZeroFields(t *testing.T) {
	args, err := BuildArgs(&descriptor.Desc{Name: "Home"})
	if err != nil {
		t.Fatalf("BuildArgs() error = %v", err)
	}
	if len(args) != 0 {
		t.Errorf("BuildArgs() = %v, want empty schema", args)
	}
}

package route

import (
	"reflect"
	"strings"
	"testing"

	"github.com/wayfinder-nav/wayfinder/internal/descriptor"
	"github.com/wayfinder-nav/wayfinder/internal/wferr"
)

func strptr(s string) *string { return &s }

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		desc *descriptor.Desc
		b    Bundle
		want Values
	}{
		{
			"optional absent decodes to null",
			articleDesc(),
			Bundle{"id": strptr("7")},
			Values{"id": int64(7), "tag": nil},
		},
		{
			"optional explicit null decodes to null",
			articleDesc(),
			Bundle{"id": strptr("7"), "tag": nil},
			Values{"id": int64(7), "tag": nil},
		},
		{
			"optional present",
			articleDesc(),
			Bundle{"id": strptr("7"), "tag": strptr("news")},
			Values{"id": int64(7), "tag": "news"},
		},
		{
			"zero fields",
			&descriptor.Desc{Name: "Home"},
			nil,
			Values{},
		},
		{
			"all kinds coerce",
			playerDesc(),
			Bundle{
				"trackId": strptr("9"),
				"title":   strptr("intro"),
				"volume":  strptr("0.5"),
				"muted":   strptr("true"),
				"quality": strptr("high"),
			},
			Values{
				"trackId": int64(9),
				"title":   "intro",
				"volume":  0.5,
				"muted":   true,
				"quality": "high",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.desc, tt.b)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		desc *descriptor.Desc
		b    Bundle
		code wferr.Code
	}{
		{
			"missing required",
			articleDesc(),
			Bundle{"tag": strptr("news")},
			wferr.ErrDecodeMissingArg,
		},
		{
			"required explicit null",
			articleDesc(),
			Bundle{"id": nil},
			wferr.ErrDecodeMissingArg,
		},
		{
			"int type mismatch",
			articleDesc(),
			Bundle{"id": strptr("x")},
			wferr.ErrDecodeBadValue,
		},
		{
			"float type mismatch",
			playerDesc(),
			Bundle{"trackId": strptr("1"), "title": strptr("x"), "volume": strptr("loud")},
			wferr.ErrDecodeBadValue,
		},
		{
			"bool type mismatch",
			playerDesc(),
			Bundle{"trackId": strptr("1"), "title": strptr("x"), "muted": strptr("yes")},
			wferr.ErrDecodeBadValue,
		},
		{
			"enum non-member",
			playerDesc(),
			Bundle{"trackId": strptr("1"), "title": strptr("x"), "quality": strptr("medium")},
			wferr.ErrDecodeBadValue,
		},
		{
			"unknown argument",
			articleDesc(),
			Bundle{"id": strptr("7"), "tga": strptr("news")},
			wferr.ErrDecodeUnknownArg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.desc, tt.b)
			if err == nil {
				t.Fatal("Decode() should have failed")
			}
			if !wferr.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", wferr.GetErrorCode(err), tt.code)
			}
			if !wferr.IsDecoding(err) {
				t.Errorf("IsDecoding() = false for %v", err)
			}
		})
	}
}

func TestDecode_TypeMismatchMessage(t *testing.T) {
	_, err := Decode(articleDesc(), Bundle{"id": strptr("x")})
	if err == nil {
		t.Fatal("Decode() should have failed")
	}
	if !strings.Contains(err.Error(), "type mismatch for id") {
		t.Errorf("error should name the mismatched field, got: %v", err)
	}
}

func TestDecode_EnumSuggestion(t *testing.T) {
	_, err := Decode(playerDesc(), Bundle{
		"trackId": strptr("1"),
		"title":   strptr("x"),
		"quality": strptr("hihg"),
	})
	if err == nil {
		t.Fatal("Decode() should have failed")
	}
	if !strings.Contains(err.Error(), "did you mean high?") {
		t.Errorf("error should suggest the close enum member, got: %v", err)
	}
}

func TestDecode_LeadingZeroInt(t *testing.T) {
	got, err := Decode(articleDesc(), Bundle{"id": strptr("007")})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got["id"] != int64(7) {
		t.Errorf("id = %v, want 7", got["id"])
	}
}

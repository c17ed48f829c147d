package inspect

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/elements"
	"github.com/npillmayer/elements/bytestr"
)

func TestFprintHTML(t *testing.T) {
	tree, err := bytestr.FromStrings("b<i>", "a&b")
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	p := NewPrinter((*bytestr.Str).String, plainConfig(40))
	if err := p.FprintHTML(&out, tree); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := `<table class="elements">` +
		`<tr><td>0</td><td>a&amp;b</td></tr>` +
		`<tr><td>1</td><td>b&lt;i&gt;</td></tr>` +
		`</table>`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("html mismatch (-want +got):\n%s", diff)
	}
	var absent *bytestr.Tree
	if err := p.FprintHTML(&out, absent); !errors.Is(err, elements.ErrAbsentInput) {
		t.Errorf("expected ErrAbsentInput, got %v", err)
	}
}

package textfile

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/elements/bytestr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"go.uber.org/goleak"
)

func lines(tree *bytestr.Tree) []string {
	var out []string
	tree.ForEach(func(s *bytestr.Str) bool {
		out = append(out, s.String())
		return true
	})
	return out
}

func TestLoadFile(t *testing.T) {
	defer goleak.VerifyNone(t)
	teardown := gotestingadapter.QuickConfig(t, "elements")
	defer teardown()
	//
	tree, err := Load("testdata/fruit.txt")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := []string{"", "apple", "fig", "pear", "日本"}
	if diff := cmp.Diff(want, lines(tree)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("invariants failed: %v", err)
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	if _, err := Load("testdata"); err == nil {
		t.Errorf("expected error loading a directory")
	}
	if _, err := Load("testdata/missing.txt"); err == nil {
		t.Errorf("expected error loading a missing file")
	}
}

func TestLoaderBroadcastsProgress(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elements")
	defer teardown()
	//
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	loader := NewLoader(ctx)
	defer loader.Close()
	loader.Batch = 2
	sub, ok := loader.Subscribe(ctx, 16)
	if !ok {
		t.Fatalf("subscription failed")
	}
	tree, err := loader.Read(strings.NewReader("b\na\nb\nc\nd\n"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if tree.Len() != 4 {
		t.Errorf("expected 4 distinct lines, got %d", tree.Len())
	}
	var got []Progress
	for len(got) == 0 || !got[len(got)-1].Done {
		select {
		case msg := <-sub:
			got = append(got, msg.(Progress))
		case <-ctx.Done():
			t.Fatalf("no final progress message, got %v", got)
		}
	}
	want := []Progress{
		{Lines: 2},
		{Lines: 4, Duplicates: 1},
		{Lines: 5, Duplicates: 1, Done: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", diff)
	}
}

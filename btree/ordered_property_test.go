package btree

import (
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./btree -run TestOrderedRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test ./btree -run '^$' -fuzz FuzzOrderedRandomizedProperty -fuzztime=10s

func randomToken(r *rand.Rand) string {
	n := r.Intn(3) + 1
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + r.Intn(8))
	}
	return string(b)
}

func assertTreeMatchesModel(t *testing.T, tree *Tree[word, wordSummary], model []string) {
	t.Helper()
	got := collectWords(tree)
	if len(got) != len(model) {
		t.Fatalf("model length mismatch: got=%d want=%d", len(got), len(model))
	}
	var wantBytes uint64
	for i := range model {
		if got[i] != model[i] {
			t.Fatalf("model mismatch at %d: got=%q want=%q", i, got[i], model[i])
		}
		wantBytes += uint64(len(model[i]))
	}
	if s := tree.Summary(); s.Bytes != wantBytes || s.Items != uint64(len(model)) {
		t.Fatalf("summary mismatch: got=%+v want bytes=%d items=%d", s, wantBytes, len(model))
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants failed: %v", err)
	}
}

func runRandomOrderedSequence(t *testing.T, seed int64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	tree := makeOrderedWordTree(t, nil)
	model := make([]string, 0, 128)
	for i := 0; i < steps; i++ {
		token := randomToken(r)
		pos, found := slices.BinarySearch(model, token)
		if r.Intn(3) == 0 {
			next, _, err := tree.Delete(word(token))
			if found != (err == nil) {
				t.Fatalf("step %d: Delete(%q) err=%v, model has it=%v", i, token, err, found)
			}
			if !found {
				continue
			}
			tree = next
			model = slices.Delete(model, pos, pos+1)
		} else {
			next, err := tree.Insert(word(token))
			if found != (err != nil) {
				t.Fatalf("step %d: Insert(%q) err=%v, model has it=%v", i, token, err, found)
			}
			if found {
				continue
			}
			tree = next
			model = slices.Insert(model, pos, token)
		}
		assertTreeMatchesModel(t, tree, model)
	}
}

func TestOrderedRandomizedProperty(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234} {
		runRandomOrderedSequence(t, seed, 600)
	}
}

func FuzzOrderedRandomizedProperty(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(99))
	f.Fuzz(func(t *testing.T, seed int64) {
		runRandomOrderedSequence(t, seed, 200)
	})
}

package words

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type fixedRand int

func (r fixedRand) IntN(n int) int { return int(r) % n }

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParseNormalizesAndFilters(t *testing.T) {
	src := strings.Join([]string{
		"# comment",
		"",
		"  Crane  ",
		"slate",
		"SLATE",
		"toolong",
		"abc",
		"ab1de",
		"mango\r",
	}, "\n")
	d, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := []string{"crane", "mango", "slate"}
	if got := d.Words(); !reflect.DeepEqual(got, want) {
		t.Fatalf("words = %v, want %v", got, want)
	}
	if d.Len() != 3 {
		t.Fatalf("len = %d, want 3", d.Len())
	}
}

func TestParseReadError(t *testing.T) {
	if _, err := Parse(failingReader{}); err == nil {
		t.Fatal("expected error from failing reader")
	}
}

func TestContainsNormalizesInput(t *testing.T) {
	d := New([]string{"crane"})
	for _, w := range []string{"crane", "CRANE", "Crane"} {
		if !d.Contains(w) {
			t.Fatalf("Contains(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"crate", "cran", "", " crane", "crane\n"} {
		if d.Contains(w) {
			t.Fatalf("Contains(%q) = true, want false", w)
		}
	}
}

func TestPickRandom(t *testing.T) {
	d := New([]string{"slate", "crane", "mango"})
	got, err := d.PickRandom(fixedRand(1))
	if err != nil {
		t.Fatalf("PickRandom returned error: %v", err)
	}
	if got != "mango" {
		t.Fatalf("PickRandom = %q, want mango", got)
	}
	if !d.Contains(got) {
		t.Fatalf("picked %q is not in the dictionary", got)
	}
}

func TestPickRandomEmpty(t *testing.T) {
	d := New(nil)
	if _, err := d.PickRandom(fixedRand(0)); !errors.Is(err, ErrEmptyDictionary) {
		t.Fatalf("error = %v, want %v", err, ErrEmptyDictionary)
	}
}

func TestPickRandomWithSeededRand(t *testing.T) {
	r, err := NewRand()
	if err != nil {
		t.Fatalf("NewRand returned error: %v", err)
	}
	d := New([]string{"slate", "crane", "mango"})
	for i := 0; i < 50; i++ {
		w, err := d.PickRandom(r)
		if err != nil {
			t.Fatalf("PickRandom returned error: %v", err)
		}
		if !d.Contains(w) {
			t.Fatalf("picked %q is not in the dictionary", w)
		}
	}
}

func TestLoadEmbedded(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if d.Len() == 0 {
		t.Fatal("embedded dictionary is empty")
	}
	for _, w := range d.Words() {
		if !Valid(w) {
			t.Fatalf("embedded word %q is not valid", w)
		}
	}
	for _, w := range []string{"crane", "crate", "mango"} {
		if !d.Contains(w) {
			t.Fatalf("embedded dictionary missing %q", w)
		}
	}
}

func TestLoadErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := error(&LoadError{Source: "words.txt", Err: cause})
	if !errors.Is(err, cause) {
		t.Fatal("LoadError does not unwrap to its cause")
	}
	var le *LoadError
	if !errors.As(err, &le) || le.Source != "words.txt" {
		t.Fatalf("errors.As = %v, want LoadError for words.txt", le)
	}
}

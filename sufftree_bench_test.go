package sufftree

import (
	"fmt"
	"testing"
)

var benchWords = []string{
	"banana", "ananas", "panama", "cabbage", "garbage",
	"mississippi", "ississippi", "ississipi", "abracadabra",
}

func generateCorpus(n int) []string {
	words := make([]string, n)
	for i := 0; i < n; i++ {
		words[i] = fmt.Sprintf("word%dsuffix", i)
	}
	return words
}

func BenchmarkInsertString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tr := New()
		for _, w := range benchWords {
			if _, err := tr.InsertString(w); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkInsertStringLargeCorpus(b *testing.B) {
	corpus := generateCorpus(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := New()
		for _, w := range corpus {
			if _, err := tr.InsertString(w); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkContains(b *testing.B) {
	tr := New()
	for _, w := range benchWords {
		if _, err := tr.InsertString(w); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Contains("issip")
	}
}

func BenchmarkFindAll(b *testing.B) {
	tr := New()
	for _, w := range benchWords {
		if _, err := tr.InsertString(w); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range tr.FindAll("an") {
		}
	}
}

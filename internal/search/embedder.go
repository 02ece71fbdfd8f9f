package search

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	"github.com/philippgille/chromem-go"
)

// NewHashEmbedder returns a deterministic local embedding function based on
// feature hashing: each token (and adjacent-token bigram) is hashed into one
// of the vector's buckets and the result is L2-normalized, so chromem's
// cosine similarity behaves like soft token overlap. The same text always
// produces the same vector, which keeps extraction runs reproducible and
// avoids any model download.
func NewHashEmbedder(dimensions int) chromem.EmbeddingFunc {
	if dimensions <= 0 {
		dimensions = 256
	}
	return func(ctx context.Context, text string) ([]float32, error) {
		vec := make([]float32, dimensions)

		tokens := embedTokens(text)
		for i, token := range tokens {
			vec[bucket(token, dimensions)]++
			// Bigrams carry a little phrase context at half weight.
			if i+1 < len(tokens) {
				vec[bucket(tokens[i]+" "+tokens[i+1], dimensions)] += 0.5
			}
		}

		normalize(vec)
		return vec, nil
	}
}

// embedTokens lowercases and splits on any non-alphanumeric rune.
func embedTokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func bucket(token string, dimensions int) int {
	h := fnv.New32a()
	h.Write([]byte(token))
	return int(h.Sum32() % uint32(dimensions))
}

func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}

package embedding

import (
	"crypto/md5"

	"github.com/akolanti/PolicyAPI/internal/config"
)

// FallbackEmbedding builds a deterministic pseudo-vector from an md5 digest
// when the real embedding capability is unavailable. Useless for semantic
// similarity, but it keeps the index populated and the pipeline exercised.
func FallbackEmbedding(text string) []float32 {
	digest := md5.Sum([]byte(text))

	vector := make([]float32, 0, config.EmbeddingOutputDimensionality)
	for len(vector) < int(config.EmbeddingOutputDimensionality) {
		for _, b := range digest {
			if len(vector) == int(config.EmbeddingOutputDimensionality) {
				break
			}
			vector = append(vector, float32(b)/255.0)
		}
	}
	return vector
}

// FitDimension truncates or zero-pads a vector to the index dimension.
func FitDimension(vector []float32) []float32 {
	want := int(config.EmbeddingOutputDimensionality)
	if len(vector) == want {
		return vector
	}
	if len(vector) > want {
		return vector[:want]
	}
	padded := make([]float32, want)
	copy(padded, vector)
	return padded
}

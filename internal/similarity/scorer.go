// Package similarity implements the profile-to-candidate text similarity
// score: TF-IDF vectors built over the two-document corpus, compared with
// cosine similarity.
//
// The scorer is a pure function with no shared state. The vocabulary and IDF
// are recomputed for every pairwise call; there is deliberately no corpus-wide
// index, since the two-document IDF is part of the ranking semantics.
package similarity

import (
	"math"

	"github.com/matchforge/go-match-engine/internal/tokenizer"
)

// Score computes the similarity between a profile text and a candidate text.
// It returns 0.0 when either input tokenizes to nothing or either vector has
// zero magnitude, and it never panics: any runtime fault during scoring is
// mapped to 0.0 so a single bad comparison cannot abort a batch ranking run.
func Score(profileText, candidateText string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
		}
	}()

	score = cosineTFIDF(profileText, candidateText)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	return score
}

func cosineTFIDF(profileText, candidateText string) float64 {
	profileTokens := tokenizer.Normalize(profileText)
	candidateTokens := tokenizer.Normalize(candidateText)
	if len(profileTokens) == 0 || len(candidateTokens) == 0 {
		return 0
	}

	profileCounts := termCounts(profileTokens)
	candidateCounts := termCounts(candidateTokens)

	// Vocabulary is the set union of both token sequences, scoped to this call.
	vocabulary := make(map[string]struct{}, len(profileCounts)+len(candidateCounts))
	for term := range profileCounts {
		vocabulary[term] = struct{}{}
	}
	for term := range candidateCounts {
		vocabulary[term] = struct{}{}
	}

	profileLen := float64(len(profileTokens))
	candidateLen := float64(len(candidateTokens))
	vocabSize := float64(len(vocabulary))

	var dot, profileMagSq, candidateMagSq float64
	for term := range vocabulary {
		// Document frequency over the two-document corpus only (1 or 2).
		docFreq := 0.0
		if profileCounts[term] > 0 {
			docFreq++
		}
		if candidateCounts[term] > 0 {
			docFreq++
		}

		// idf = ln(|vocab| / (1 + df)). For a term shared by both documents
		// in a small vocabulary this can go negative; it is kept as computed
		// because ranking depends on the exact relative ordering.
		idf := math.Log(vocabSize / (1 + docFreq))

		profileWeight := float64(profileCounts[term]) / profileLen * idf
		candidateWeight := float64(candidateCounts[term]) / candidateLen * idf

		dot += profileWeight * candidateWeight
		profileMagSq += profileWeight * profileWeight
		candidateMagSq += candidateWeight * candidateWeight
	}

	if profileMagSq == 0 || candidateMagSq == 0 {
		return 0
	}
	return dot / (math.Sqrt(profileMagSq) * math.Sqrt(candidateMagSq))
}

// termCounts returns the per-token multiplicity within one token sequence.
func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}

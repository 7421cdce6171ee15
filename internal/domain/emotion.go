package domain

import "strings"

// Emotions is the fixed label set, in classifier output order. Every
// component that touches a score vector assumes this exact order; changing
// it without retraining the model silently mislabels predictions.
var Emotions = []string{"Angry", "Disgust", "Fear", "Happy", "Sad", "Surprise", "Neutral"}

// EmotionGenres maps each lowercase emotion label to the genre keywords
// used to filter the movie catalog. Read-only after init.
var EmotionGenres = map[string][]string{
	"happy":    {"comedy", "animation", "adventure"},
	"sad":      {"drama", "romance"},
	"angry":    {"action", "thriller"},
	"fear":     {"horror", "thriller", "mystery"},
	"disgust":  {"horror", "comedy"},
	"surprise": {"mystery", "sci-fi", "thriller"},
	"neutral":  {"documentary", "drama", "biography"},
}

// DefaultGenres is used when an emotion has no genre mapping.
var DefaultGenres = []string{"drama"}

// ParseEmotion validates a label case-insensitively against the fixed set
// and returns its canonical form.
func ParseEmotion(label string) (string, error) {
	for _, e := range Emotions {
		if strings.EqualFold(e, label) {
			return e, nil
		}
	}
	return "", ErrInvalidEmotion
}

// GenresFor returns the genre keywords configured for a canonical label.
func GenresFor(label string) []string {
	if genres, ok := EmotionGenres[strings.ToLower(label)]; ok {
		return genres
	}
	return DefaultGenres
}

// Distribution holds one confidence score per label in Emotions order.
// Scores need not sum to 1; they are only compared against each other.
type Distribution struct {
	Scores []float64
}

// Dominant returns the label with the maximum score. Ties resolve to the
// first index reaching the maximum, which keeps results deterministic.
func (d Distribution) Dominant() string {
	maxIdx := 0
	for i := 1; i < len(d.Scores); i++ {
		if d.Scores[i] > d.Scores[maxIdx] {
			maxIdx = i
		}
	}
	return Emotions[maxIdx]
}

// ByLabel returns the distribution keyed by label, with all 7 labels
// present even when a raw score is 0.
func (d Distribution) ByLabel() map[string]float64 {
	out := make(map[string]float64, len(Emotions))
	for i, e := range Emotions {
		out[e] = d.Scores[i]
	}
	return out
}

// Analysis is the result of one emotion inference request.
type Analysis struct {
	ID              string
	DominantEmotion string
	Emotions        Distribution
	FaceDetected    bool
}

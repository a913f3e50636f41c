package nlp

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return New(zerolog.Nop())
}

func TestSegment(t *testing.T) {
	s := newTestService()

	assert.Equal(t, []string{"我", "要", "咖", "啡"}, s.Segment("我要咖啡", "zh"))
	assert.Equal(t, []string{"one", "large", "latte"}, s.Segment("one large latte", "en"))
	assert.Empty(t, s.Segment("", "en"))
}

func TestAnalyzeSentiment(t *testing.T) {
	s := newTestService()

	positive := s.AnalyzeSentiment("the coffee was good and great", "en")
	assert.Equal(t, "positive", positive.Sentiment)
	assert.Equal(t, 1.0, positive.Score)
	assert.Greater(t, positive.Confidence, 0.0)

	negative := s.AnalyzeSentiment("bad coffee, poor service, hate it", "en")
	assert.Equal(t, "negative", negative.Sentiment)
	assert.Equal(t, 1.0, negative.Score)

	neutral := s.AnalyzeSentiment("a cup of coffee", "en")
	assert.Equal(t, "neutral", neutral.Sentiment)
	assert.Equal(t, 0.5, neutral.Score)
	assert.Equal(t, 0.0, neutral.Confidence)

	// Empty text must degrade, not crash.
	empty := s.AnalyzeSentiment("", "en")
	assert.Equal(t, "neutral", empty.Sentiment)
	assert.Equal(t, 0.0, empty.Confidence)
}

func TestRecognizeIntent(t *testing.T) {
	s := newTestService()

	greeting := s.RecognizeIntent("hello there", "en")
	assert.Equal(t, "greeting", greeting.Intent)
	assert.Greater(t, greeting.Confidence, 0.0)

	order := s.RecognizeIntent("I want to order a coffee", "en")
	assert.Equal(t, "order", order.Intent)

	unknown := s.RecognizeIntent("zzz qqq", "en")
	assert.Equal(t, "unknown", unknown.Intent)
	assert.Equal(t, 0.5, unknown.Confidence)
}

func TestRecognizeEntities(t *testing.T) {
	s := newTestService()

	entities := s.RecognizeEntities("2 large coffee today", "en")
	types := make(map[string][]string)
	for _, entity := range entities {
		assert.Equal(t, 0.8, entity.Confidence)
		types[entity.Type] = append(types[entity.Type], entity.Value)
	}
	assert.Contains(t, types["product"], "coffee")
	assert.Contains(t, types["size"], "large")
	assert.Contains(t, types["quantity"], "2")
	assert.Contains(t, types["time"], "today")
}

func TestChat(t *testing.T) {
	s := newTestService()
	rng := rand.New(rand.NewSource(1))

	result := s.Chat(42, "hello", nil, "en", rng)
	assert.Equal(t, "greeting", result.Intent)
	assert.Contains(t, s.chatResponses["greeting"], result.Response)

	require.NotNil(t, result.Context)
	assert.Equal(t, "greeting", result.Context["last_intent"])
	assert.Equal(t, "hello", result.Context["last_message"])
	assert.Equal(t, result.Response, result.Context["last_response"])
}

func TestChatUnknownIntentUsesDefaultReplies(t *testing.T) {
	s := newTestService()
	rng := rand.New(rand.NewSource(2))

	result := s.Chat(42, "qqq zzz", map[string]interface{}{"session": "abc"}, "en", rng)
	assert.Equal(t, "unknown", result.Intent)
	assert.Contains(t, s.chatResponses["default"], result.Response)
	assert.Equal(t, "abc", result.Context["session"])
}

func TestAnalyzeComments(t *testing.T) {
	s := newTestService()

	result := s.AnalyzeComments([]string{"good coffee", "great place, love it"}, "en")
	assert.Equal(t, "positive", result.OverallSentiment)
	require.Len(t, result.CommentAnalyses, 2)
	assert.Equal(t, "good coffee", result.CommentAnalyses[0].Comment)

	neutral := s.AnalyzeComments([]string{"a coffee", "the cup"}, "en")
	assert.Equal(t, "neutral", neutral.OverallSentiment)
	assert.Equal(t, 0.5, neutral.SentimentScore)

	empty := s.AnalyzeComments(nil, "en")
	assert.Equal(t, "negative", empty.OverallSentiment)
	assert.Equal(t, 0.0, empty.SentimentScore)
	assert.Empty(t, empty.CommentAnalyses)
}

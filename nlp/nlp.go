package nlp

import (
	"math/rand"
	"strings"

	"github.com/rs/zerolog"
)

// Entity is a single keyword hit in the input text.
type Entity struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// SentimentResult is the outcome of a sentiment pass over one text.
type SentimentResult struct {
	Sentiment  string  `json:"sentiment"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// IntentResult carries the recognized intent and the entities found along
// the way.
type IntentResult struct {
	Intent     string   `json:"intent"`
	Confidence float64  `json:"confidence"`
	Entities   []Entity `json:"entities"`
}

// ChatResult is a bot reply together with the updated conversation context.
type ChatResult struct {
	Response   string                 `json:"response"`
	Intent     string                 `json:"intent"`
	Confidence float64                `json:"confidence"`
	Context    map[string]interface{} `json:"context"`
}

// CommentAnalysis is the per-comment breakdown of a batch pass.
type CommentAnalysis struct {
	Comment    string  `json:"comment"`
	Sentiment  string  `json:"sentiment"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// CommentBatchResult aggregates sentiment over a batch of comments.
type CommentBatchResult struct {
	OverallSentiment string            `json:"overall_sentiment"`
	SentimentScore   float64           `json:"sentiment_score"`
	CommentAnalyses  []CommentAnalysis `json:"comment_analyses"`
}

type intentPattern struct {
	name     string
	keywords []string
}

type entityPattern struct {
	name     string
	keywords []string
}

// Service is a keyword-driven text analyzer covering segmentation,
// sentiment, intent, entities and canned chat replies. The pattern tables
// are bilingual (Chinese and English) and fixed at construction.
type Service struct {
	intentPatterns   []intentPattern
	entityPatterns   []entityPattern
	chatResponses    map[string][]string
	positiveKeywords []string
	negativeKeywords []string
	logger           zerolog.Logger
}

// New builds the NLP service with its built-in pattern tables.
func New(logger zerolog.Logger) *Service {
	return &Service{
		intentPatterns: []intentPattern{
			{"order", []string{"点", "订", "买", "要", "order", "buy", "purchase"}},
			{"inquiry", []string{"多少钱", "价格", "优惠", "折扣", "how much", "price", "cost"}},
			{"recommendation", []string{"推荐", "建议", "什么好", "what's good", "recommend", "suggest"}},
			{"complaint", []string{"不好", "差", "投诉", "抱怨", "bad", "poor", "complain"}},
			{"thanks", []string{"谢谢", "感谢", "thank", "thanks"}},
			{"greeting", []string{"你好", "您好", "hi", "hello", "hey"}},
			{"farewell", []string{"再见", "拜拜", "bye", "goodbye"}},
			{"store_info", []string{"地址", "营业时间", "在哪里", "location", "address", "hours"}},
		},
		entityPatterns: []entityPattern{
			{"product", []string{"咖啡", "茶", "蛋糕", "面包", "coffee", "tea", "cake", "bread"}},
			{"size", []string{"大", "中", "小", "large", "medium", "small"}},
			{"quantity", []string{"一", "二", "三", "四", "五", "1", "2", "3", "4", "5"}},
			{"location", []string{"店", "门店", "地址", "location", "store"}},
			{"time", []string{"今天", "明天", "现在", "today", "tomorrow", "now"}},
		},
		chatResponses: map[string][]string{
			"greeting":       {"您好！欢迎光临 Solo Coffee，请问有什么可以帮助您的？", "你好！很高兴为您服务，请问您需要点什么？", "嗨！欢迎来到 Solo Coffee，有什么我可以帮忙的吗？"},
			"farewell":       {"再见！期待您的下次光临！", "拜拜！祝您有愉快的一天！", "再见！感谢您的光临！"},
			"thanks":         {"不客气！很高兴为您服务！", "不用谢！有任何问题随时告诉我！", "乐意效劳！"},
			"order":          {"好的，请问您想点什么呢？", "没问题，您想点什么咖啡或茶？", "好的，请问您需要点什么饮品？"},
			"inquiry":        {"我们的价格非常合理，您可以查看我们的菜单了解详情。", "不同产品价格不同，请问您想了解哪款产品的价格？", "我们经常有优惠活动，您可以关注我们的公众号获取最新信息。"},
			"recommendation": {"我们的招牌咖啡是 Latte，非常受欢迎！", "如果您喜欢浓郁的咖啡，推荐您尝试 Espresso。", "如果您喜欢喝茶，我们的绿茶也很不错！"},
			"complaint":      {"非常抱歉给您带来不便，请问具体是什么问题呢？", "对不起，我们会努力改进的，请问您遇到了什么问题？", "非常抱歉，我们会认真处理您的反馈，请问具体情况是？"},
			"store_info":     {"我们的地址是：北京市朝阳区建国路 88 号，营业时间是每天 8:00-22:00。", "我们在全国各地都有门店，请问您想了解哪个城市的门店信息？", "您可以在我们的官网或APP上查看所有门店的地址和营业时间。"},
			"default":        {"抱歉，我不太理解您的意思，请问您能再说一遍吗？", "对不起，我没有听明白，请问您需要什么帮助？", "抱歉，我不太清楚，请您详细说明一下好吗？"},
		},
		positiveKeywords: []string{"好", "棒", "喜欢", "不错", "good", "great", "like", "love"},
		negativeKeywords: []string{"不好", "差", "讨厌", "失望", "bad", "poor", "dislike", "hate"},
		logger:           logger.With().Str("component", "nlp").Logger(),
	}
}

// Segment splits text into tokens: per rune for Chinese, per whitespace
// field otherwise.
func (s *Service) Segment(text, language string) []string {
	s.logger.Debug().Str("language", language).Msg("segmenting text")

	if language == "zh" {
		tokens := make([]string, 0, len(text))
		for _, r := range text {
			tokens = append(tokens, string(r))
		}
		return tokens
	}
	return strings.Fields(text)
}

// AnalyzeSentiment counts positive and negative keyword hits and reduces
// them to a label, score and confidence.
func (s *Service) AnalyzeSentiment(text, language string) SentimentResult {
	s.logger.Debug().Msg("analyzing sentiment")

	positive := 0
	for _, kw := range s.positiveKeywords {
		if strings.Contains(text, kw) {
			positive++
		}
	}
	negative := 0
	for _, kw := range s.negativeKeywords {
		if strings.Contains(text, kw) {
			negative++
		}
	}

	result := SentimentResult{Sentiment: "neutral", Score: 0.5}
	switch {
	case positive > negative:
		result.Sentiment = "positive"
		result.Score = minFloat(1.0, float64(positive)/float64(positive+negative))
	case negative > positive:
		result.Sentiment = "negative"
		result.Score = minFloat(1.0, float64(negative)/float64(positive+negative))
	}

	if words := len(strings.Fields(text)); words > 0 {
		result.Confidence = minFloat(1.0, float64(positive+negative)/float64(words))
	}
	return result
}

// RecognizeIntent scores each intent by keyword hits in the lowercased text
// and returns the best one, plus the entities found in the text.
func (s *Service) RecognizeIntent(text, language string) IntentResult {
	s.logger.Debug().Msg("recognizing intent")

	lowered := strings.ToLower(text)

	bestIntent := "unknown"
	bestScore := 0
	for _, pattern := range s.intentPatterns {
		score := 0
		for _, kw := range pattern.keywords {
			if strings.Contains(lowered, kw) {
				score++
			}
		}
		if score > bestScore {
			bestIntent = pattern.name
			bestScore = score
		}
	}

	confidence := 0.5
	if bestScore > 0 {
		if words := len(strings.Fields(text)); words > 0 {
			confidence = minFloat(1.0, float64(bestScore)/float64(words))
		}
	}

	return IntentResult{
		Intent:     bestIntent,
		Confidence: confidence,
		Entities:   s.RecognizeEntities(text, language),
	}
}

// RecognizeEntities reports every entity keyword contained in the text.
func (s *Service) RecognizeEntities(text, language string) []Entity {
	s.logger.Debug().Msg("recognizing entities")

	lowered := strings.ToLower(text)
	entities := make([]Entity, 0)
	for _, pattern := range s.entityPatterns {
		for _, kw := range pattern.keywords {
			if strings.Contains(lowered, kw) {
				entities = append(entities, Entity{Type: pattern.name, Value: kw, Confidence: 0.8})
			}
		}
	}
	return entities
}

// Chat recognizes the intent of the message, picks a canned reply for it and
// folds the exchange into the conversation context.
func (s *Service) Chat(userID int, message string, context map[string]interface{}, language string, rng *rand.Rand) ChatResult {
	s.logger.Info().Int("user_id", userID).Msg("handling chat message")

	intentResult := s.RecognizeIntent(message, language)

	replies, ok := s.chatResponses[intentResult.Intent]
	if !ok {
		replies = s.chatResponses["default"]
	}
	response := replies[rng.Intn(len(replies))]

	if context == nil {
		context = make(map[string]interface{})
	}
	context["last_intent"] = intentResult.Intent
	context["last_message"] = message
	context["last_response"] = response

	return ChatResult{
		Response:   response,
		Intent:     intentResult.Intent,
		Confidence: intentResult.Confidence,
		Context:    context,
	}
}

// AnalyzeComments runs sentiment over each comment and averages the scores
// into an overall label.
func (s *Service) AnalyzeComments(comments []string, language string) CommentBatchResult {
	s.logger.Info().Int("count", len(comments)).Msg("analyzing comment batch")

	analyses := make([]CommentAnalysis, 0, len(comments))
	total := 0.0
	for _, comment := range comments {
		sentiment := s.AnalyzeSentiment(comment, language)
		total += sentiment.Score
		analyses = append(analyses, CommentAnalysis{
			Comment:    comment,
			Sentiment:  sentiment.Sentiment,
			Score:      sentiment.Score,
			Confidence: sentiment.Confidence,
		})
	}

	average := 0.0
	if len(comments) > 0 {
		average = total / float64(len(comments))
	}

	overall := "neutral"
	switch {
	case average > 0.6:
		overall = "positive"
	case average < 0.4:
		overall = "negative"
	}

	return CommentBatchResult{
		OverallSentiment: overall,
		SentimentScore:   average,
		CommentAnalyses:  analyses,
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

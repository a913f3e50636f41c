package models

import "app/nlp"

type SegmentRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type SegmentResponse struct {
	Tokens    []string `json:"tokens"`
	RequestID string   `json:"request_id"`
	Timestamp int64    `json:"timestamp"`
}

type SentimentRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type SentimentResponse struct {
	Sentiment  string  `json:"sentiment"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	RequestID  string  `json:"request_id"`
	Timestamp  int64   `json:"timestamp"`
}

type IntentRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type IntentResponse struct {
	Intent     string       `json:"intent"`
	Confidence float64      `json:"confidence"`
	Entities   []nlp.Entity `json:"entities"`
	RequestID  string       `json:"request_id"`
	Timestamp  int64        `json:"timestamp"`
}

type EntityRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type EntityResponse struct {
	Entities  []nlp.Entity `json:"entities"`
	RequestID string       `json:"request_id"`
	Timestamp int64        `json:"timestamp"`
}

type ChatRequest struct {
	UserID   int                    `json:"user_id"`
	Message  string                 `json:"message"`
	Context  map[string]interface{} `json:"context"`
	Language string                 `json:"language"`
}

type ChatResponse struct {
	Response   string                 `json:"response"`
	Intent     string                 `json:"intent"`
	Confidence float64                `json:"confidence"`
	Context    map[string]interface{} `json:"context"`
	RequestID  string                 `json:"request_id"`
	Timestamp  int64                  `json:"timestamp"`
}

type CommentAnalysisRequest struct {
	Comments []string `json:"comments"`
	Language string   `json:"language"`
}

type CommentAnalysisResponse struct {
	OverallSentiment string                `json:"overall_sentiment"`
	SentimentScore   float64               `json:"sentiment_score"`
	CommentAnalyses  []nlp.CommentAnalysis `json:"comment_analyses"`
	RequestID        string                `json:"request_id"`
	Timestamp        int64                 `json:"timestamp"`
}

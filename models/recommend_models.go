package models

import "app/recommend"

type RecommendRequest struct {
	UserID  int                    `json:"user_id"`
	StoreID int                    `json:"store_id"`
	Count   int                    `json:"count"`
	Context map[string]interface{} `json:"context"`
}

type ProductRecommendResponse struct {
	UserID          int                               `json:"user_id"`
	Recommendations []recommend.ProductRecommendation `json:"recommendations"`
	RequestID       string                            `json:"request_id"`
	Timestamp       int64                             `json:"timestamp"`
}

type PromotionRecommendResponse struct {
	UserID          int                                 `json:"user_id"`
	Recommendations []recommend.PromotionRecommendation `json:"recommendations"`
	RequestID       string                              `json:"request_id"`
	Timestamp       int64                               `json:"timestamp"`
}

type CombinationRecommendResponse struct {
	UserID          int                                   `json:"user_id"`
	Recommendations []recommend.CombinationRecommendation `json:"recommendations"`
	RequestID       string                                `json:"request_id"`
	Timestamp       int64                                 `json:"timestamp"`
}

type FeedbackRequest struct {
	UserID        int      `json:"user_id"`
	ProductID     *int     `json:"product_id"`
	PromotionID   *int     `json:"promotion_id"`
	FeedbackType  string   `json:"feedback_type"`
	FeedbackValue *float64 `json:"feedback_value"`
}

type FeedbackResponse struct {
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
	Timestamp int64  `json:"timestamp"`
}

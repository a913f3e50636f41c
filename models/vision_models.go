package models

import "app/vision"

type ImageClassifyRequest struct {
	ImageURL  string `json:"image_url"`
	ImageData string `json:"image_data"`
}

type ImageClassifyResponse struct {
	DominantCategory string              `json:"dominant_category"`
	Confidence       float64             `json:"confidence"`
	Predictions      []vision.Prediction `json:"predictions"`
	RequestID        string              `json:"request_id"`
	Timestamp        int64               `json:"timestamp"`
}

type ObjectDetectRequest struct {
	ImageURL  string   `json:"image_url"`
	ImageData string   `json:"image_data"`
	Threshold *float64 `json:"threshold"`
}

type ObjectDetectResponse struct {
	Detections []vision.Detection `json:"detections"`
	Count      int                `json:"count"`
	RequestID  string             `json:"request_id"`
	Timestamp  int64              `json:"timestamp"`
}

type StoreLayoutRequest struct {
	ImageURL  string `json:"image_url"`
	ImageData string `json:"image_data"`
}

type StoreLayoutResponse struct {
	DetectedSections  []string `json:"detected_sections"`
	EstimatedCapacity int      `json:"estimated_capacity"`
	LayoutQuality     float64  `json:"layout_quality"`
	Suggestions       []string `json:"suggestions"`
	RequestID         string   `json:"request_id"`
	Timestamp         int64    `json:"timestamp"`
}

type ProductDisplayRequest struct {
	ImageURL  string `json:"image_url"`
	ImageData string `json:"image_data"`
}

type ProductDisplayResponse struct {
	EstimatedProductCount int      `json:"estimated_product_count"`
	DisplayQuality        float64  `json:"display_quality"`
	VarietyScore          float64  `json:"variety_score"`
	Suggestions           []string `json:"suggestions"`
	RequestID             string   `json:"request_id"`
	Timestamp             int64    `json:"timestamp"`
}

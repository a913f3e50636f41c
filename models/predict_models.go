package models

import "app/predict"

type SalesPredictRequest struct {
	StoreID                int    `json:"store_id"`
	ProductID              *int   `json:"product_id"`
	StartDate              string `json:"start_date"`
	EndDate                string `json:"end_date"`
	IncludeExternalFactors bool   `json:"include_external_factors"`
}

type SalesPredictResponse struct {
	StoreID     int                       `json:"store_id"`
	Predictions []predict.SalesPrediction `json:"predictions"`
	RequestID   string                    `json:"request_id"`
	Timestamp   int64                     `json:"timestamp"`
}

type InventoryPredictRequest struct {
	StoreID          int     `json:"store_id"`
	ProductID        int     `json:"product_id"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	CurrentInventory float64 `json:"current_inventory"`
}

type InventoryPredictResponse struct {
	StoreID     int                           `json:"store_id"`
	ProductID   int                           `json:"product_id"`
	Predictions []predict.InventoryPrediction `json:"predictions"`
	RequestID   string                        `json:"request_id"`
	Timestamp   int64                         `json:"timestamp"`
}

type CustomerFlowPredictRequest struct {
	StoreID                int    `json:"store_id"`
	StartDate              string `json:"start_date"`
	EndDate                string `json:"end_date"`
	IncludeExternalFactors bool   `json:"include_external_factors"`
}

type CustomerFlowPredictResponse struct {
	StoreID     int                      `json:"store_id"`
	Predictions []predict.FlowPrediction `json:"predictions"`
	RequestID   string                   `json:"request_id"`
	Timestamp   int64                    `json:"timestamp"`
}

type DemandPredictRequest struct {
	StoreID                int    `json:"store_id"`
	ProductID              int    `json:"product_id"`
	StartDate              string `json:"start_date"`
	EndDate                string `json:"end_date"`
	IncludeExternalFactors bool   `json:"include_external_factors"`
}

type DemandPredictResponse struct {
	StoreID     int                        `json:"store_id"`
	ProductID   int                        `json:"product_id"`
	Predictions []predict.DemandPrediction `json:"predictions"`
	RequestID   string                     `json:"request_id"`
	Timestamp   int64                      `json:"timestamp"`
}

type TrainRequest struct {
	ModelType      string                 `json:"model_type"`
	TrainingParams map[string]interface{} `json:"training_params"`
}

type TrainResponse struct {
	TaskID    string `json:"task_id"`
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
	Timestamp int64  `json:"timestamp"`
}

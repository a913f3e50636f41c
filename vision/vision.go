package vision

import (
	"math/rand"
	"sort"

	"github.com/rs/zerolog"

	"app/utils"
)

// Prediction is one scored category from image classification.
type Prediction struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// ClassificationResult is the outcome of classifying one image.
type ClassificationResult struct {
	DominantCategory string       `json:"dominant_category"`
	Confidence       float64      `json:"confidence"`
	Predictions      []Prediction `json:"predictions"`
}

// BoundingBox is a normalized detection rectangle.
type BoundingBox struct {
	XMin float64 `json:"x_min"`
	YMin float64 `json:"y_min"`
	XMax float64 `json:"x_max"`
	YMax float64 `json:"y_max"`
}

// Detection is one detected object with its box.
type Detection struct {
	Label string      `json:"label"`
	Score float64     `json:"score"`
	BBox  BoundingBox `json:"bbox"`
}

// DetectionResult is the outcome of object detection on one image.
type DetectionResult struct {
	Detections []Detection `json:"detections"`
	Count      int         `json:"count"`
}

// LayoutResult is the outcome of store-layout analysis.
type LayoutResult struct {
	DetectedSections  []string `json:"detected_sections"`
	EstimatedCapacity int      `json:"estimated_capacity"`
	LayoutQuality     float64  `json:"layout_quality"`
	Suggestions       []string `json:"suggestions"`
}

// DisplayResult is the outcome of product-display analysis.
type DisplayResult struct {
	EstimatedProductCount int      `json:"estimated_product_count"`
	DisplayQuality        float64  `json:"display_quality"`
	VarietyScore          float64  `json:"variety_score"`
	Suggestions           []string `json:"suggestions"`
}

/// Service stands in for the vision models: every analysis draws its scores
// from the injected random source.
type Service struct {
	productCategories []string
	objectLabels      []string
	layoutSections    []string
	logger            zerolog.Logger
}

// New builds the vision service with its built-in label sets.
func New(logger zerolog.Logger) *Service {
	return &Service{
		productCategories: []string{
			"coffee", "tea", "cake", "bread", "sandwich",
			"salad", "fruit", "dessert", "beverage", "snack",
		},
		objectLabels: []string{
			"coffee_cup", "tea_cup", "cake_slice", "bread_loaf", "sandwich",
			"salad_bowl", "fruit_plate", "dessert_plate", "bottle", "can",
			"napkin", "plate", "fork", "knife", "spoon",
		},
		layoutSections: []string{
			"counter", "tables", "seating_area", "display_shelves",
			"coffee_machine", "cash_register",
		},
		logger: logger.With().Str("component", "vision").Logger(),
	}
}

// Classify scores every product category, keeps those above 0.3 and returns
// the top three.
func (s *Service) Classify(imageURL string, rng *rand.Rand) ClassificationResult {
	s.logger.Info().Str("image_url", imageURL).Msg("classifying image")

	predictions := make([]Prediction, 0, len(s.productCategories))
	for _, category := range s.productCategories {
		score := rng.Float64()
		if score > 0.3 {
			predictions = append(predictions, Prediction{Category: category, Score: utils.Round4(score)})
		}
	}
	sortByScore(predictions)

	if len(predictions) > 3 {
		predictions = predictions[:3]
	}

	result := ClassificationResult{DominantCategory: "unknown", Predictions: predictions}
	if len(predictions) > 0 {
		result.DominantCategory = predictions[0].Category
		result.Confidence = predictions[0].Score
	}
	return result
}

// Detect draws one to five candidate objects and keeps those scoring above
// the threshold.
func (s *Service) Detect(imageURL string, threshold float64, rng *rand.Rand) DetectionResult {
	s.logger.Info().Str("image_url", imageURL).Msg("detecting objects")

	detections := make([]Detection, 0, 5)
	for i := 0; i < 1+rng.Intn(5); i++ {
		label := s.objectLabels[rng.Intn(len(s.objectLabels))]
		score := rng.Float64()
		if score <= threshold {
			continue
		}

		xMin := rng.Float64() * 0.8
		yMin := rng.Float64() * 0.8
		detections = append(detections, Detection{
			Label: label,
			Score: utils.Round4(score),
			BBox: BoundingBox{
				XMin: utils.Round4(xMin),
				YMin: utils.Round4(yMin),
				XMax: utils.Round4(xMin + 0.1 + rng.Float64()*0.1),
				YMax: utils.Round4(yMin + 0.1 + rng.Float64()*0.1),
			},
		})
	}

	sortDetections(detections)
	return DetectionResult{Detections: detections, Count: len(detections)}
}

// AnalyzeLayout reports a random subset of store sections with capacity and
// quality estimates.
func (s *Service) AnalyzeLayout(imageURL string, rng *rand.Rand) LayoutResult {
	s.logger.Info().Str("image_url", imageURL).Msg("analyzing store layout")

	n := 3 + rng.Intn(len(s.layoutSections)-2)
	perm := rng.Perm(len(s.layoutSections))
	sections := make([]string, 0, n)
	for _, idx := range perm[:n] {
		sections = append(sections, s.layoutSections[idx])
	}

	return LayoutResult{
		DetectedSections:  sections,
		EstimatedCapacity: 10 + rng.Intn(41),
		LayoutQuality:     utils.Round2(0.5 + rng.Float64()*0.5),
		Suggestions: []string{
			"Ensure clear signage for different sections",
			"Optimize seating arrangement for better customer flow",
			"Keep high-demand products within easy reach",
		},
	}
}

// AnalyzeDisplay reports product count and display quality estimates.
func (s *Service) AnalyzeDisplay(imageURL string, rng *rand.Rand) DisplayResult {
	s.logger.Info().Str("image_url", imageURL).Msg("analyzing product display")

	return DisplayResult{
		EstimatedProductCount: 5 + rng.Intn(16),
		DisplayQuality:        utils.Round2(0.5 + rng.Float64()*0.5),
		VarietyScore:          utils.Round2(0.5 + rng.Float64()*0.5),
		Suggestions: []string{
			"Arrange products by category for better organization",
			"Ensure products are fully stocked and visible",
			"Use attractive signage to highlight promotions",
		},
	}
}

func sortByScore(predictions []Prediction) {
	sort.SliceStable(predictions, func(i, j int) bool { return predictions[i].Score > predictions[j].Score })
}

func sortDetections(detections []Detection) {
	sort.SliceStable(detections, func(i, j int) bool { return detections[i].Score > detections[j].Score })
}

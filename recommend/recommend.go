package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Product is a recommendable menu item with a popularity prior.
type Product struct {
	ProductID   int
	ProductName string
	Category    string
	Price       float64
	Popularity  float64
}

// UserProfile carries a user's learned per-category preferences in [0,1].
type UserProfile struct {
	UserID      int
	Preferences map[string]float64
}

// ProductRecommendation is one scored product suggestion.
type ProductRecommendation struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Score       float64 `json:"score"`
	Reason      string  `json:"reason"`
}

// PromotionRecommendation is one scored promotion suggestion.
type PromotionRecommendation struct {
	PromotionID   int     `json:"promotion_id"`
	PromotionName string  `json:"promotion_name"`
	Score         float64 `json:"score"`
	Reason        string  `json:"reason"`
}

// ComboProduct is a line item inside a combination.
type ComboProduct struct {
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// CombinationRecommendation is one scored product bundle.
type CombinationRecommendation struct {
	CombinationID int            `json:"combination_id"`
	Products      []ComboProduct `json:"products"`
	Score         float64        `json:"score"`
	Reason        string         `json:"reason"`
}

type promotion struct {
	id       int
	name     string
	category string
	discount float64
}

type combination struct {
	id       int
	products []ComboProduct
	category string
	discount float64
}

// Service scores products, promotions and product combinations against a
// user's category preferences, with popularity fallbacks for unknown users.
type Service struct {
	products     []Product
	users        []UserProfile
	promotions   []promotion
	combinations []combination
	store        FeedbackStore
	logger       zerolog.Logger
}

// New builds the recommendation service over the built-in sample data.
// Feedback is persisted through store.
func New(store FeedbackStore, logger zerolog.Logger) *Service {
	return &Service{
		products: []Product{
			{1, "Americano", "coffee", 3.5, 0.8},
			{2, "Latte", "coffee", 4.2, 0.9},
			{3, "Cappuccino", "coffee", 4.0, 0.7},
			{4, "Espresso", "coffee", 2.8, 0.6},
			{5, "Mocha", "coffee", 4.5, 0.85},
			{6, "Green Tea", "tea", 3.0, 0.5},
			{7, "Black Tea", "tea", 2.8, 0.4},
			{8, "Chai Latte", "tea", 3.8, 0.65},
			{9, "Croissant", "pastry", 2.5, 0.7},
			{10, "Muffin", "pastry", 2.2, 0.6},
		},
		users: []UserProfile{
			{1, map[string]float64{"coffee": 0.9, "tea": 0.3, "pastry": 0.6}},
			{2, map[string]float64{"coffee": 0.5, "tea": 0.8, "pastry": 0.4}},
			{3, map[string]float64{"coffee": 0.7, "tea": 0.5, "pastry": 0.9}},
			{4, map[string]float64{"coffee": 0.8, "tea": 0.2, "pastry": 0.3}},
			{5, map[string]float64{"coffee": 0.4, "tea": 0.7, "pastry": 0.8}},
		},
		promotions: []promotion{
			{1, "Buy 2 Get 1 Free Coffee", "coffee", 0.33},
			{2, "Tea of the Day - 20% Off", "tea", 0.2},
			{3, "Breakfast Combo - $5.99", "combo", 0.25},
			{4, "Happy Hour - 15% Off All Drinks", "all", 0.15},
			{5, "Loyalty Member Discount - 10% Off", "all", 0.1},
		},
		combinations: []combination{
			{1, []ComboProduct{{1, "Americano", 1}, {9, "Croissant", 1}}, "breakfast", 0.1},
			{2, []ComboProduct{{2, "Latte", 1}, {10, "Muffin", 1}}, "breakfast", 0.1},
			{3, []ComboProduct{{5, "Mocha", 1}, {9, "Croissant", 1}}, "dessert", 0.12},
			{4, []ComboProduct{{6, "Green Tea", 1}, {10, "Muffin", 1}}, "healthy", 0.08},
		},
		store:  store,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
}

func (s *Service) preferencesFor(userID int) map[string]float64 {
	for _, user := range s.users {
		if user.UserID == userID {
			return user.Preferences
		}
	}
	return nil
}

func preference(prefs map[string]float64, category string) float64 {
	if v, ok := prefs[category]; ok {
		return v
	}
	return 0.5
}

func clampCount(count, available int) int {
	if count <= 0 || count > available {
		return available
	}
	return count
}

// Products returns up to count product suggestions for the user, scored as
// 0.7 preference + 0.3 popularity, or the popularity ranking for unknown
// users.
func (s *Service) Products(userID, storeID, count int, rng *rand.Rand) []ProductRecommendation {
	s.logger.Info().Int("user_id", userID).Int("store_id", storeID).Msg("recommending products")

	prefs := s.preferencesFor(userID)
	if prefs == nil {
		return s.popularProducts(count)
	}

	scored := make([]ProductRecommendation, 0, len(s.products))
	for _, product := range s.products {
		score := preference(prefs, product.Category)*0.7 + product.Popularity*0.3
		scored = append(scored, ProductRecommendation{
			ProductID:   product.ProductID,
			ProductName: product.ProductName,
			Score:       score,
			Reason:      fmt.Sprintf("Based on your preference for %s", product.Category),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored[:clampCount(count, len(scored))]
}

func (s *Service) popularProducts(count int) []ProductRecommendation {
	byPopularity := make([]Product, len(s.products))
	copy(byPopularity, s.products)
	sort.SliceStable(byPopularity, func(i, j int) bool { return byPopularity[i].Popularity > byPopularity[j].Popularity })

	recommendations := make([]ProductRecommendation, 0, len(byPopularity))
	for _, product := range byPopularity {
		recommendations = append(recommendations, ProductRecommendation{
			ProductID:   product.ProductID,
			ProductName: product.ProductName,
			Score:       product.Popularity,
			Reason:      "Popular item",
		})
	}
	return recommendations[:clampCount(count, len(recommendations))]
}

// Promotions returns up to count promotion suggestions scored as 0.6
// preference + 0.4 discount; unknown users get a shuffled list with random
// scores.
func (s *Service) Promotions(userID, storeID, count int, rng *rand.Rand) []PromotionRecommendation {
	s.logger.Info().Int("user_id", userID).Int("store_id", storeID).Msg("recommending promotions")

	prefs := s.preferencesFor(userID)
	if prefs == nil {
		shuffled := make([]promotion, len(s.promotions))
		copy(shuffled, s.promotions)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		recommendations := make([]PromotionRecommendation, 0, len(shuffled))
		for _, promo := range shuffled {
			recommendations = append(recommendations, PromotionRecommendation{
				PromotionID:   promo.id,
				PromotionName: promo.name,
				Score:         rng.Float64(),
				Reason:        "Limited time offer",
			})
		}
		return recommendations[:clampCount(count, len(recommendations))]
	}

	scored := make([]PromotionRecommendation, 0, len(s.promotions))
	for _, promo := range s.promotions {
		categoryScore := 0.0
		if promo.category == "all" {
			for _, v := range prefs {
				if v > categoryScore {
					categoryScore = v
				}
			}
		} else {
			categoryScore = preference(prefs, promo.category)
		}

		scored = append(scored, PromotionRecommendation{
			PromotionID:   promo.id,
			PromotionName: promo.name,
			Score:         categoryScore*0.6 + promo.discount*0.4,
			Reason:        fmt.Sprintf("Based on your preference for %s items", promo.category),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored[:clampCount(count, len(scored))]
}

// Combinations returns up to count bundle suggestions scored as 0.7 average
// preference over the bundle + 0.3 scaled discount.
func (s *Service) Combinations(userID, storeID, count int, rng *rand.Rand) []CombinationRecommendation {
	s.logger.Info().Int("user_id", userID).Int("store_id", storeID).Msg("recommending combinations")

	prefs := s.preferencesFor(userID)
	if prefs == nil {
		shuffled := make([]combination, len(s.combinations))
		copy(shuffled, s.combinations)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		recommendations := make([]CombinationRecommendation, 0, len(shuffled))
		for _, combo := range shuffled {
			recommendations = append(recommendations, CombinationRecommendation{
				CombinationID: combo.id,
				Products:      combo.products,
				Score:         rng.Float64(),
				Reason:        "Popular combination",
			})
		}
		return recommendations[:clampCount(count, len(recommendations))]
	}

	categoryByID := make(map[int]string, len(s.products))
	for _, product := range s.products {
		categoryByID[product.ProductID] = product.Category
	}

	scored := make([]CombinationRecommendation, 0, len(s.combinations))
	for _, combo := range s.combinations {
		total := 0.0
		for _, item := range combo.products {
			if category, ok := categoryByID[item.ProductID]; ok {
				total += preference(prefs, category)
			}
		}
		avg := total / float64(len(combo.products))

		scored = append(scored, CombinationRecommendation{
			CombinationID: combo.id,
			Products:      combo.products,
			Score:         avg*0.7 + combo.discount*10*0.3,
			Reason:        fmt.Sprintf("Based on your preferences and %d%% discount", int(combo.discount*100)),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored[:clampCount(count, len(scored))]
}

// SubmitFeedback persists a user's reaction to a recommendation.
func (s *Service) SubmitFeedback(ctx context.Context, fb Feedback) error {
	s.logger.Info().Int("user_id", fb.UserID).Str("type", fb.FeedbackType).Msg("recording feedback")

	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now()
	}
	if err := s.store.Save(ctx, fb); err != nil {
		return fmt.Errorf("saving feedback: %w", err)
	}
	return nil
}

// TrainModel pretends to start a training job and returns its task ID.
func (s *Service) TrainModel(modelType string, params map[string]interface{}) string {
	s.logger.Info().Str("model_type", modelType).Msg("starting mock training job")
	return uuid.New().String()
}

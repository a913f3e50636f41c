package routes

import (
	"app/config"
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/health", handlers.HandleHealthCheck)

	api := app.Group("/api/v1")
	if config.AppConfig != nil && config.AppConfig.JWTSecret != "" {
		api.Use(middleware.Authenticate)
	}

	// --- Decision Engine Routes ---
	decision := api.Group("/decision")
	decision.Post("/purchase", handlers.HandlePurchaseDecision)
	decision.Post("/scheduling", handlers.HandleSchedulingDecision)
	decision.Post("/promotion", handlers.HandlePromotionDecision)

	// --- NLP Routes ---
	nlp := api.Group("/nlp")
	nlp.Post("/segment", handlers.HandleSegment)
	nlp.Post("/sentiment", handlers.HandleSentiment)
	nlp.Post("/intent", handlers.HandleIntent)
	nlp.Post("/entity", handlers.HandleEntity)
	nlp.Post("/chat", handlers.HandleChat)
	nlp.Post("/comment_analysis", handlers.HandleCommentAnalysis)

	// --- Prediction Routes ---
	predict := api.Group("/predict")
	predict.Post("/sales", handlers.HandleSalesPredict)
	predict.Post("/inventory", handlers.HandleInventoryPredict)
	predict.Post("/customer_flow", handlers.HandleCustomerFlowPredict)
	predict.Post("/demand", handlers.HandleDemandPredict)
	predict.Post("/train", handlers.HandlePredictTrain)

	// --- Recommendation Routes ---
	recommend := api.Group("/recommend")
	recommend.Post("/products", handlers.HandleProductRecommend)
	recommend.Post("/promotions", handlers.HandlePromotionRecommend)
	recommend.Post("/combinations", handlers.HandleCombinationRecommend)
	recommend.Post("/feedback", handlers.HandleRecommendFeedback)
	recommend.Post("/train", handlers.HandleRecommendTrain)

	// --- Vision Routes ---
	vision := api.Group("/vision")
	vision.Post("/classify", handlers.HandleImageClassify)
	vision.Post("/detect", handlers.HandleObjectDetect)
	vision.Post("/analyze_layout", handlers.HandleStoreLayoutAnalyze)
	vision.Post("/analyze_display", handlers.HandleProductDisplayAnalyze)
}

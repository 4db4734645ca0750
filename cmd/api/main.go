package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"familymarket/internal/adapter/api"
	"familymarket/internal/adapter/api/handler"
	apimiddleware "familymarket/internal/adapter/api/middleware"
	"familymarket/internal/adapter/api/router"
	"familymarket/internal/adapter/repository"
	"familymarket/internal/domain/service"
	"familymarket/internal/infrastructure/cache"
	"familymarket/internal/infrastructure/firebase"
	"familymarket/internal/infrastructure/media"
	"familymarket/internal/infrastructure/scheduler"
	"familymarket/internal/infrastructure/websocket"
	"familymarket/internal/usecase"
	"familymarket/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	messagingClient, err := firebaseApp.Messaging(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Messaging: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	storeRepo := repository.NewFirestoreStoreRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	serviceRepo := repository.NewFirestoreServiceRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	commentRepo := repository.NewFirestoreCommentRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	testimonialRepo := repository.NewFirestoreTestimonialRepository(firestoreClient)
	paymentRepo := repository.NewFirestorePaymentRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)
	pushSender := firebase.NewMessagingClient(messagingClient)
	cloudinaryClient := media.NewCloudinaryClient(cfg.CloudinaryCloudName, cfg.CloudinaryImagePreset, cfg.CloudinaryRawPreset)

	searchCache := cache.NewSearchCache(redisClient, 60*time.Second)
	tokenBlacklist := cache.NewTokenBlacklist(redisClient)

	hub := websocket.NewHub()
	hub.Start(ctx)

	paymentGateway := service.NewMercadoPagoPaymentService(cfg.MercadoPagoAccessToken, cfg.MercadoPagoEnvironment != "production")

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient, tokenBlacklist)
	userUseCase := usecase.NewUserUseCase(userRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, userRepo, pushSender, hub)
	adminUseCase := usecase.NewAdminUseCase(userRepo, notificationUseCase)
	storeUseCase := usecase.NewStoreUseCase(storeRepo, userRepo, productRepo, serviceRepo, listingRepo, searchCache)
	productUseCase := usecase.NewProductUseCase(productRepo, storeRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, storeRepo)
	listingUseCase := usecase.NewListingUseCase(listingRepo, storeRepo, userRepo)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, userRepo, productRepo, serviceRepo, listingRepo)
	testimonialUseCase := usecase.NewTestimonialUseCase(testimonialRepo, userRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, listingRepo, userRepo, paymentGateway, notificationUseCase, usecase.PaymentURLs{
		Success: cfg.FrontendBaseURL + "/pagos/exito",
		Failure: cfg.FrontendBaseURL + "/pagos/error",
		Pending: cfg.FrontendBaseURL + "/pagos/pendiente",
		Webhook: cfg.PublicBaseURL + "/v1/pagos/webhook",
	})

	handler.Setup(
		authUseCase,
		userUseCase,
		adminUseCase,
		storeUseCase,
		productUseCase,
		serviceUseCase,
		listingUseCase,
		commentUseCase,
		notificationUseCase,
		testimonialUseCase,
		paymentUseCase,
	)
	handler.SetupUploadHandler(cloudinaryClient)
	handler.SetupWebSocketHandler(hub, authClient)

	sched := scheduler.New()
	sched.Register("featured-expiry", cfg.FeaturedSweepInterval, listingUseCase.SweepExpiredFeatured)
	sched.Register("subscription-expiry", cfg.SubscriptionSweepInterval, adminUseCase.SweepExpiredSubscriptions)
	sched.Register("comment-orphans", cfg.CommentSweepInterval, commentUseCase.SweepOrphans)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(apimiddleware.GeneralRateLimit())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient, tokenBlacklist)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

package main

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tailorhq/resume-tailor/config"
	"github.com/tailorhq/resume-tailor/internal/api/handlers"
	"github.com/tailorhq/resume-tailor/internal/api/middleware"
	"github.com/tailorhq/resume-tailor/internal/api/routes"
	"github.com/tailorhq/resume-tailor/internal/logger"
	"github.com/tailorhq/resume-tailor/internal/notify"
	"github.com/tailorhq/resume-tailor/internal/providers/llm"
	mongorepo "github.com/tailorhq/resume-tailor/internal/repositories/mongo"
	"github.com/tailorhq/resume-tailor/internal/services"
	"github.com/tailorhq/resume-tailor/internal/tailoring"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	mongoClient, err := config.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("mongodb init failed")
	}
	db := config.MongoDatabase(mongoClient)
	if err := config.EnsureMongoIndexes(db); err != nil {
		log.WithError(err).Fatal("mongodb index setup failed")
	}
	log.Info("mongodb connected")

	redisClient, err := config.ConnectRedis()
	if err != nil {
		log.WithError(err).Fatal("redis init failed")
	}
	if redisClient != nil {
		log.Info("redis connected, rate limiting enabled")
	} else {
		log.Info("redis not configured, rate limiting disabled")
	}

	// A missing or bogus key is not fatal: the engine degrades to the
	// deterministic fallback and every request still gets an answer.
	var provider llm.Provider
	groq, err := llm.NewGroq(
		os.Getenv("GROQ_API_KEY"),
		os.Getenv("GROQ_BASE_URL"),
		os.Getenv("GROQ_MODEL"),
	)
	if err != nil {
		log.WithError(err).Warn("llm provider not configured, tailoring will use the fallback heuristic")
	} else {
		provider = groq
		log.WithField("model", groq.Model()).Info("llm provider ready")
	}

	notifier := notify.NewN8N(
		os.Getenv("N8N_WEBHOOK_RESUME_TAILORED"),
		os.Getenv("N8N_WEBHOOK_JOB_ADDED"),
		log,
	)

	jobRepo := mongorepo.NewJobRepo(db)
	resultRepo := mongorepo.NewResultRepo(db)
	profileRepo := mongorepo.NewProfileRepo(db)

	engine := tailoring.NewEngine(provider, log)
	jobSvc := services.NewJobService(jobRepo, notifier)
	profileSvc := services.NewProfileService(profileRepo)
	tailorSvc := services.NewTailorService(engine, jobSvc, profileSvc, resultRepo, notifier, log)

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Job:     handlers.NewJobHandler(jobSvc),
		Tailor:  handlers.NewTailorHandler(tailorSvc),
		Profile: handlers.NewProfileHandler(profileSvc),
		TailorLimiter: middleware.RateLimit(
			redisClient,
			envInt("TAILOR_RATE_LIMIT", 10),
			time.Duration(envInt("TAILOR_RATE_WINDOW_SECONDS", 60))*time.Second,
			log,
		),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

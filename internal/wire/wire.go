package wire

import (
	"Inkwell/internal/api"
	"Inkwell/internal/api/config"
	"Inkwell/internal/api/handler"
	"Inkwell/internal/job"
	"Inkwell/internal/pkg/cron"
	"Inkwell/internal/pkg/es"
	"Inkwell/internal/pkg/kafka"
	"Inkwell/internal/pkg/llm"
	"Inkwell/internal/pkg/mongo"
	"Inkwell/internal/repository"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
	ViewProducer kafka.ViewProducer
}

func BuildApplication(db *gorm.DB, mongoDB *mongodriver.Database, generator *llm.Generator, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)
	postRepo := repository.NewPostRepo(db)
	postActionRepo := repository.NewPostActionRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	dailyStatRepo := repository.NewDailyStatRepo(db)

	postESRepo := es.NewPostRepo(es.Client)
	generationRepo := mongo.NewGenerationRepo(mongoDB)

	viewProducer, err := kafka.NewViewProducer(cfg)
	if err != nil {
		return nil, err
	}

	userService := service.NewUserService(userRepo)
	userFollowService := service.NewUserFollowService(userFollowRepo, userRepo)
	postService := service.NewPostService(postRepo, userFollowRepo, postESRepo)
	postActionService := service.NewPostActionService(postActionRepo, postRepo, dailyStatRepo, viewProducer)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	generationService := service.NewGenerationService(generator, generationRepo)
	mediaService := service.NewMediaService()

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		UserFollowHandler: handler.NewUserFollowHandler(userFollowService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(postActionService),
		CommentHandler:    handler.NewCommentHandler(commentService),
		AIHandler:         handler.NewAIHandler(generationService),
		MediaHandler:      handler.NewMediaHandler(mediaService),
	}

	router := api.SetupRouter(handlers, userRepo)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, postRepo, dailyStatRepo)
	if err != nil {
		return nil, err
	}

	scheduledPublishJob := job.NewScheduledPublishJob(postService)
	cronMgr := cron.NewCronManager(scheduledPublishJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
		ViewProducer: viewProducer,
	}, nil
}

package wire

import (
	"circle/internal/api"
	"circle/internal/api/config"
	"circle/internal/api/handler"
	"circle/internal/job"
	"circle/internal/pkg/cron"
	"circle/internal/pkg/es"
	"circle/internal/pkg/kafka"
	"circle/internal/pkg/linkpreview"
	"circle/internal/pkg/mailer"
	pkgmongo "circle/internal/pkg/mongo"
	"circle/internal/repository"
	"circle/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer bundles the top-level components main runs
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
	IMService    service.IMService
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	// postgres repositories
	userRepo := repository.NewUserRepo(db)
	connectionRepo := repository.NewConnectionRepo(db)
	postRepo := repository.NewPostRepo(db)
	postActionRepo := repository.NewPostActionRepo(db)
	clipRepo := repository.NewClipRepo(db)
	groupRepo := repository.NewGroupRepo(db)
	campaignRepo := repository.NewCampaignRepo(db)
	pledgeRepo := repository.NewPledgeRepo(db)
	conversationRepo := repository.NewConversationRepo(db)
	liveStreamRepo := repository.NewLiveStreamRepo(db)
	notificationPrefRepo := repository.NewNotificationPrefRepo(db)
	erosRepo := repository.NewErosRepo(db)

	// mongo repositories
	messageRepo := pkgmongo.NewMessageRepo(mongoDB)
	notificationRepo := pkgmongo.NewNotificationRepo(mongoDB)

	// elasticsearch repositories
	userESRepo := es.NewUserRepo()
	postESRepo := es.NewPostRepo(es.Client)

	mail := mailer.NewMailer()
	previews := linkpreview.NewFetcher()

	// services
	notificationService := service.NewNotificationService(notificationRepo, notificationPrefRepo, userRepo, mail)
	userService := service.NewUserService(userRepo, userESRepo)
	connectionService := service.NewConnectionService(connectionRepo, userRepo, notificationService)
	postService := service.NewPostService(postRepo, postActionRepo, userRepo, groupRepo, connectionService, previews)
	postActionService := service.NewPostActionService(postRepo, postActionRepo, clipRepo, userRepo, notificationService)
	groupService := service.NewGroupService(groupRepo, userRepo, notificationService)
	campaignService := service.NewCampaignService(campaignRepo, pledgeRepo, userRepo, notificationService)
	imService := service.NewIMService(conversationRepo, connectionRepo, userRepo, messageRepo, notificationService)
	liveService := service.NewLiveService(liveStreamRepo, userRepo)
	erosService := service.NewErosService(erosRepo, userRepo, connectionRepo)
	searchService := service.NewSearchService(postESRepo, userESRepo, postRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		ConnectionHandler:   handler.NewConnectionHandler(connectionService),
		PostHandler:         handler.NewPostHandler(postService, searchService),
		PostActionHandler:   handler.NewPostActionHandler(postActionService),
		GroupHandler:        handler.NewGroupHandler(groupService),
		CampaignHandler:     handler.NewCampaignHandler(campaignService),
		IMHandler:           handler.NewIMHandler(imService),
		WSHandler:           handler.NewWSHandler(),
		LiveHandler:         handler.NewLiveHandler(liveService),
		ErosHandler:         handler.NewErosHandler(erosService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		MediaHandler:        handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, userESRepo, postESRepo, userRepo)
	if err != nil {
		return nil, err
	}

	weeklyDigestJob := job.NewWeeklyDigestJob(userRepo, campaignRepo, pledgeRepo, notificationRepo, notificationService)
	cronMgr := cron.NewCronManager(weeklyDigestJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
		IMService:    imService,
	}, nil
}

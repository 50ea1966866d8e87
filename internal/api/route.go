package api

import (
	"circle/internal/api/middleware"
	"circle/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.GET("/profile/:user_id", group.UserHandler.GetUserInfo)
			userGroup.GET("/search", group.UserHandler.SearchUsers)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetMyInfo)
				authGroup.PUT("/info", group.UserHandler.UpdateProfile)
			}
		}

		connectionGroup := apiGroup.Group("/connections")
		connectionGroup.Use(middleware.AuthMiddleware())
		{
			connectionGroup.POST("", group.ConnectionHandler.SendRequest)
			connectionGroup.GET("", group.ConnectionHandler.GetConnections)
			connectionGroup.GET("/pending/incoming", group.ConnectionHandler.GetPendingIncoming)
			connectionGroup.GET("/pending/outgoing", group.ConnectionHandler.GetPendingOutgoing)
			connectionGroup.POST("/:connection_id/accept", group.ConnectionHandler.Accept)
			connectionGroup.POST("/:connection_id/decline", group.ConnectionHandler.Decline)
			connectionGroup.DELETE("/request/:connection_id", group.ConnectionHandler.Cancel)
			connectionGroup.DELETE("/peer/:peer_id", group.ConnectionHandler.Disconnect)
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/latest", group.PostHandler.GetLatest)
				authOptGroup.GET("/search", group.PostHandler.SearchPosts)
				authOptGroup.GET("/detail/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/list/:user_id", group.PostHandler.GetUserPosts)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
				authGroup.GET("/feed", group.PostHandler.GetFeed)
				authGroup.GET("/group/:group_id", group.PostHandler.GetGroupFeed)
				authGroup.GET("/suggest/:post_id", group.PostHandler.SuggestReplies)
			}
		}

		actionGroup := apiGroup.Group("/post/action")
		{
			actionGroup.GET("/comments/:post_id", group.PostActionHandler.GetComments)

			authActionGroup := actionGroup.Group("")
			authActionGroup.Use(middleware.AuthMiddleware())
			{
				authActionGroup.POST("/likes/:post_id", group.PostActionHandler.LikePost)
				authActionGroup.DELETE("/likes/:post_id", group.PostActionHandler.UnlikePost)
				authActionGroup.POST("/comments", group.PostActionHandler.CreateComment)
				authActionGroup.DELETE("/comments/:comment_id", group.PostActionHandler.DeleteComment)
			}
		}

		clipGroup := apiGroup.Group("/clips")
		{
			authOptGroup := clipGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostActionHandler.GetClips)
				authOptGroup.GET("/list/:user_id", group.PostActionHandler.GetUserClips)
			}

			authGroup := clipGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostActionHandler.CreateClip)
				authGroup.POST("/likes/:clip_id", group.PostActionHandler.LikeClip)
				authGroup.DELETE("/likes/:clip_id", group.PostActionHandler.UnlikeClip)
			}
		}

		groupGroup := apiGroup.Group("/groups")
		groupGroup.Use(middleware.AuthMiddleware())
		{
			groupGroup.POST("", group.GroupHandler.CreateGroup)
			groupGroup.GET("", group.GroupHandler.GetGroups)
			groupGroup.GET("/mine", group.GroupHandler.GetMyGroups)
			groupGroup.GET("/detail/:group_id", group.GroupHandler.GetGroup)
			groupGroup.PUT("/:group_id", group.GroupHandler.UpdateGroup)
			groupGroup.POST("/:group_id/join", group.GroupHandler.Join)
			groupGroup.POST("/:group_id/leave", group.GroupHandler.Leave)
			groupGroup.GET("/members/:group_id", group.GroupHandler.GetMembers)
		}

		campaignGroup := apiGroup.Group("/campaigns")
		{
			campaignGroup.GET("", group.CampaignHandler.GetActiveCampaigns)
			campaignGroup.GET("/detail/:campaign_id", group.CampaignHandler.GetCampaign)
			campaignGroup.GET("/pledges/:campaign_id", group.CampaignHandler.GetPledges)

			authGroup := campaignGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.CampaignHandler.CreateCampaign)
				authGroup.POST("/cancel/:campaign_id", group.CampaignHandler.CancelCampaign)
				authGroup.POST("/pledge", group.CampaignHandler.Pledge)
			}
		}

		imGroup := apiGroup.Group("/im")
		{
			imGroup.GET("", group.WSHandler.Connect)

			authGroup := imGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/send", group.IMHandler.SendMessage)
				authGroup.GET("/history", group.IMHandler.GetChatHistory)
				authGroup.GET("/sync", group.IMHandler.SyncMessages)
				authGroup.GET("/list", group.IMHandler.GetConversationList)
				authGroup.POST("/read", group.IMHandler.MarkAsRead)
			}
		}

		liveGroup := apiGroup.Group("/live")
		{
			liveGroup.GET("/active", group.LiveHandler.GetLiveStreams)

			authGroup := liveGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/start", group.LiveHandler.StartStream)
				authGroup.POST("/end/:stream_id", group.LiveHandler.EndStream)
				authGroup.GET("/token/:stream_id", group.LiveHandler.JoinToken)
			}
		}

		erosGroup := apiGroup.Group("/eros")
		erosGroup.Use(middleware.AuthMiddleware())
		{
			erosGroup.POST("/profile", group.ErosHandler.UpsertProfile)
			erosGroup.GET("/profile", group.ErosHandler.GetMyProfile)
			erosGroup.GET("/profile/:user_id", group.ErosHandler.GetProfile)
			erosGroup.POST("/profile/deactivate", group.ErosHandler.Deactivate)
			erosGroup.GET("/candidates", group.ErosHandler.GetCandidates)
		}

		notificationGroup := apiGroup.Group("/notifications")
		notificationGroup.Use(middleware.AuthMiddleware())
		{
			notificationGroup.GET("", group.NotificationHandler.GetList)
			notificationGroup.GET("/unread", group.NotificationHandler.GetUnreadCount)
			notificationGroup.POST("/read", group.NotificationHandler.MarkAsRead)
			notificationGroup.POST("/read/all", group.NotificationHandler.MarkAllAsRead)
			notificationGroup.GET("/prefs", group.NotificationHandler.GetPrefs)
			notificationGroup.PUT("/prefs", group.NotificationHandler.UpdatePref)
		}

		mediaGroup := apiGroup.Group("/media")
		mediaGroup.Use(middleware.AuthMiddleware())
		{
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
			mediaGroup.GET("/presign", group.MediaHandler.PresignUpload)
		}
	}

	return r
}

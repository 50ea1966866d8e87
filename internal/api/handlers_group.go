package api

import "circle/internal/api/handler"

// HandlersGroup bundles every initialized handler for the router
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	ConnectionHandler   *handler.ConnectionHandler
	PostHandler         *handler.PostHandler
	PostActionHandler   *handler.PostActionHandler
	GroupHandler        *handler.GroupHandler
	CampaignHandler     *handler.CampaignHandler
	IMHandler           *handler.IMHandler
	WSHandler           *handler.WSHandler
	LiveHandler         *handler.LiveHandler
	ErosHandler         *handler.ErosHandler
	NotificationHandler *handler.NotificationHandler
	MediaHandler        *handler.MediaHandler
}

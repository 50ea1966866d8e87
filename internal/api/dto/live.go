package dto

// LiveStartDTO open a live room
type LiveStartDTO struct {
	Title string `json:"title" binding:"required" validate:"min=1,max=255"`
}

// LiveStreamDTO one live stream
type LiveStreamDTO struct {
	ID        uint64   `json:"id"`
	Title     string   `json:"title"`
	RoomName  string   `json:"room_name"`
	Status    string   `json:"status"`
	Host      *UserDTO `json:"host"`
	CreatedAt string   `json:"created_at"`
}

// LiveTokenDTO join credential for a room
type LiveTokenDTO struct {
	Token    string `json:"token"`
	WSURL    string `json:"ws_url"`
	RoomName string `json:"room_name"`
}

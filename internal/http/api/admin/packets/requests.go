package packets

// query for GET /api/admin/messages
type ListMessagesRequest struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

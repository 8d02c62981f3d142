package packets

// REQUESTS FOR /api/site/*

// body for PUT /api/site/preferences
type SetPreferenceRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

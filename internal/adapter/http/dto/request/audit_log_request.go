package request

// RecordAuthRequest reports a login attempt from the authentication layer.
type RecordAuthRequest struct {
	Actor   string `json:"actor" binding:"required"`
	Action  string `json:"action" binding:"required"`
	Success bool   `json:"success"`
}

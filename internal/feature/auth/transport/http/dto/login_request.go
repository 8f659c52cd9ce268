package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenRes は/loginの成功レスポンスです。
type TokenRes struct {
	Token string `json:"token"`
}

// MessageRes は本文を持たない成功レスポンスです。
type MessageRes struct {
	Message string `json:"message"`
}

package media

import "github.com/danielgtaylor/huma/v2"

type uploadInput struct {
	CapsuleID int64 `path:"capsuleId"`
	RawBody   huma.MultipartFormFiles[uploadFormData]
}

type uploadFormData struct {
	Image huma.FormFile `form:"image" contentType:"image/*,application/octet-stream"`
}

type uploadOutput struct {
	Body uploadResponse
}

type uploadResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type getInput struct {
	CapsuleID int64 `path:"capsuleId"`
}

type getOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

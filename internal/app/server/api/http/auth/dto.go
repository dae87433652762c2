package auth

import "net/http"

type loginOutput struct {
	Cookie http.Cookie `header:"Set-Cookie"`
	URL    string      `header:"Location"`
}

type callbackInput struct {
	State       string      `query:"state"`
	Code        string      `query:"code"`
	StateCookie http.Cookie `cookie:"fm_oauth_state"`
}

type callbackOutput struct {
	Cookies []http.Cookie `header:"Set-Cookie"`
	URL     string        `header:"Location"`
}

type userOutput struct {
	Body UserResponse
}

type UserResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

type updateInput struct {
	Body updateRequest
}

type updateRequest struct {
	Username string `json:"username,omitempty" doc:"New username, 3-20 characters from [A-Za-z0-9_-]"`
}

type updateOutput struct {
	Body UpdateResponse
}

type UpdateResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type logoutOutput struct {
	Cookie http.Cookie `header:"Set-Cookie"`
	URL    string      `header:"Location"`
}

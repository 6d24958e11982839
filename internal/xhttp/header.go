package xhttp

import "net/http"

const (
	Accept        = "Accept"
	Authorization = "Authorization"
	ContentType   = "Content-Type"
	UserAgent     = "User-Agent"
	XRequestID    = "X-Request-ID"
)

const ApplicationJSON = "application/json"

func SetRequestHeaderBearer(req *http.Request, token string) {
	const bearerPrefix = "Bearer "
	req.Header.Set(Authorization, bearerPrefix+token)
}

func SetRequestHeaderAcceptJSON(req *http.Request) {
	req.Header.Set(Accept, ApplicationJSON)
}

func SetRequestHeaderContentTypeJSON(req *http.Request) {
	req.Header.Set(ContentType, ApplicationJSON)
}

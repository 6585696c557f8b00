package xhttp

import "net/http"

const (
	Accept     = "Accept"
	UserAgent  = "User-Agent"
	XRequestID = "X-Request-ID"
)

func SetRequestHeaderRequestID(req *http.Request, requestID string) {
	req.Header.Set(XRequestID, requestID)
}

func GetRequestHeaderRequestID(req *http.Request) string {
	return req.Header.Get(XRequestID)
}

func SetRequestHeaderAcceptJSON(req *http.Request) {
	const applicationJSON = "application/json"
	req.Header.Set(Accept, applicationJSON)
}

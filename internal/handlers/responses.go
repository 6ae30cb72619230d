package handlers

// StatusResponse is the JSON shape of the session API's own replies. Backend
// replies are forwarded verbatim instead.
type StatusResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

var (
	respTokenRequired      = StatusResponse{OK: false, Message: "token required"}
	respBackendUnavailable = StatusResponse{OK: false, Message: "backend unavailable"}
)

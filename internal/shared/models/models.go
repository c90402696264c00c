package models

// TaskEntry is one tracked work unit inside a day record. Start, end and
// delta are caller-trusted; the server never checks that they agree.
type TaskEntry struct {
	ID       int     `json:"id"`
	Task     string  `json:"task"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Delta    float64 `json:"delta"`
	Platform string  `json:"platform,omitempty"`
	Notes    string  `json:"notes,omitempty"`
	Active   bool    `json:"active,omitempty"`
}

// DayRecord holds every task tracked for one calendar day. Day is the
// canonical dd/mm/yyyy storage key; entries keep insertion order and the
// last one is conventionally the current task.
type DayRecord struct {
	Day     string      `json:"_id"`
	Records []TaskEntry `json:"records"`
}

// APIKeyRecord is the stored server credential, keyed by subject type.
type APIKeyRecord struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

// DayUpsert is the POST/PUT request body: a day key plus its full task list.
type DayUpsert struct {
	ID      string      `json:"id"`
	Records []TaskEntry `json:"records"`
}

// AccessTokenRequest carries the client access token for key exchange.
type AccessTokenRequest struct {
	AccessToken string `json:"access_token"`
}

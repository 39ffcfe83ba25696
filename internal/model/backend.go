package model

// ProxyResponse is an upstream reply relayed to the caller
type ProxyResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

// HealthCheckResult reports connectivity to the AI/places backend
type HealthCheckResult struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	BackendURL string      `json:"backendUrl"`
	Status     int         `json:"status,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

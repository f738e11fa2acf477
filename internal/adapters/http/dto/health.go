package dto

// Health status values.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of /health/live and /health/ready. Checks maps
// each upstream name to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse summarises registry results. ready is false when any
// check failed.
func ToReadinessResponse(results map[string]error) (resp HealthResponse, ready bool) {
	resp = HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = HealthNotReady
			continue
		}
		resp.Checks[name] = HealthOK
	}
	return resp, resp.Status == HealthReady
}

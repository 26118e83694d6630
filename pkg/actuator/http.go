package actuator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// httpClient is a shared HTTP client with timeout to prevent blocking.
// Used by all HTTPJointClient instances.
var httpClient = &http.Client{
	Timeout: 2 * time.Second,
}

// HTTPJointClient implements JointSetter against the robot daemon's HTTP
// API.
type HTTPJointClient struct {
	BaseURL string
}

// NewHTTPJointClient creates a joint client for the robot at the given
// host.
func NewHTTPJointClient(host string) *HTTPJointClient {
	return &HTTPJointClient{
		BaseURL: fmt.Sprintf("http://%s:8000", host),
	}
}

// SetJointPosition commands one joint to an absolute angle in degrees.
func (c *HTTPJointClient) SetJointPosition(joint string, degrees float64) error {
	payload := map[string]interface{}{
		"joint":        joint,
		"position_deg": degrees,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal joint payload: %w", err)
	}

	resp, err := httpClient.Post(
		c.BaseURL+"/api/joint/set_target",
		"application/json",
		strings.NewReader(string(data)),
	)
	if err != nil {
		return fmt.Errorf("joint request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("joint %q rejected: %w (status %d)", joint, ErrCommandRejected, resp.StatusCode)
	}
	return nil
}

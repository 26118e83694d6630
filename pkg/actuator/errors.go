package actuator

import "errors"

var (
	// ErrCommandRejected is returned when the actuator refuses a joint
	// command.
	ErrCommandRejected = errors.New("joint command rejected")
)

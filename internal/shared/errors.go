package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Connector errors
	ErrConnectorLive      = fmt.Errorf("connector already initialized")
	ErrConnectFailed      = fmt.Errorf("connection failed")
	ErrNotConnected       = fmt.Errorf("not connected")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// API errors
	ErrAPIRequest       = fmt.Errorf("API request failed")
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")

	// Record set errors
	ErrEmptyRecordSet = fmt.Errorf("empty record set")
	ErrUnknownColumn  = fmt.Errorf("unknown column")
	ErrSinkWrite      = fmt.Errorf("sink write failed")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

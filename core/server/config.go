package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// Empty disables authentication (development only).
	ApiKey string `mapstructure:"api_key" default:""`
	// TransactionLimit caps how many ledger entries a single
	// GET /transactions call may return.
	TransactionLimit int `mapstructure:"transaction_limit" default:"1000"`
}

package querystore

// BackendConfig carries the mutable, process-wide backend configuration
// (credentials included). It is read at operator construction time and
// never cached beyond that: every resolution observes the configuration
// current at that moment, updates never apply retroactively to in-flight
// operations.
type BackendConfig struct {
	// Root prefix applied to every key of the s3 operator (optional)
	Root string

	// Bucket the s3 operator works against
	Bucket string

	// Region passed through to the s3 client (optional)
	Region string

	// Endpoint of the S3-compatible service, host[:port] without scheme
	Endpoint string

	AccessKeyID     string
	SecretAccessKey string

	// UseSSL enables TLS towards the s3 endpoint
	UseSSL bool
}

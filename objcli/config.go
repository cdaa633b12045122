package objcli

// ClientConfig encapsulates the transport options accepted when constructing a concrete store binding.
//
// NOTE: When no static credentials are provided, bindings fall back to the ambient credential resolution performed by
// their SDK (environment, shared config, instance metadata).
type ClientConfig struct {
	// Endpoint overrides the store endpoint, required for S3 compatible stores, optional for AWS itself.
	Endpoint string

	// Region is the region requests are signed for.
	Region string

	// AccessKey/SecretKey are static credentials; both must be provided for them to be used.
	AccessKey string
	SecretKey string

	// DisableTLS uses plain HTTP when talking to the endpoint; intended for local development stores.
	DisableTLS bool
}

// Static returns a boolean indicating whether the config carries usable static credentials.
func (c ClientConfig) Static() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

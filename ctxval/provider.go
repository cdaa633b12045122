package ctxval

import "fmt"

// Provider represents a storage provider.
type Provider int

const (
	// ProviderNone means not using a provider e.g. using the local filesystem.
	ProviderNone Provider = iota

	// ProviderAWS is the AWS S3 storage provider.
	ProviderAWS

	// ProviderMinIO is the MinIO (or any S3 compatible) storage provider.
	ProviderMinIO
)

// String returns a human readable representation of the storage provider.
func (p Provider) String() string {
	switch p {
	case ProviderNone:
		return ""
	case ProviderAWS:
		return "AWS"
	case ProviderMinIO:
		return "MinIO"
	}

	panic(fmt.Sprintf("unknown provider %d", p))
}

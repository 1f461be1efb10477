//go:build !windows || !(amd64 || 386)

package interop

// Load always fails here: the vendor service and its shim are windows only.
func Load(path string) (ABI, error) {
	return nil, ErrUnsupportedPlatform
}

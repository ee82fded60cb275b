//go:build !darwin && !windows

package display

// newPlatformSetter has no native setter to offer here; Linux and the BSDs
// go through the helper programs instead.
func newPlatformSetter(deps) (Setter, error) {
	return nil, ErrUnsupported
}

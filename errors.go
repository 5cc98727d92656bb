package aquarelle

import "fmt"

// ConfigurationError reports an invalid Config field. Validation runs before
// any buffer mutation, so a call failing with ConfigurationError leaves the
// pixmap untouched.
type ConfigurationError struct {
	// Field is the Config field name, e.g. "PosterizeLevels".
	Field string

	// Reason describes why the value is invalid.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("aquarelle: invalid configuration: %s: %s", e.Field, e.Reason)
}

// DimensionError reports a pixmap whose dimensions or backing storage are
// inconsistent: non-positive width or height, or a data length that is not
// width*height*4.
type DimensionError struct {
	Width  int
	Height int
	Len    int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("aquarelle: invalid pixmap dimensions: %dx%d with %d bytes", e.Width, e.Height, e.Len)
}

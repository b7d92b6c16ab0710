package services

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateImageRef checks an image reference for a screen or a layout slot.
// A nil ref means "no image assigned" and is always valid. Otherwise the
// value must be an absolute URL or a path rooted at "/". Both the screen
// and layout write paths go through here.
func ValidateImageRef(ref *string) error {
	if ref == nil {
		return nil
	}
	v := *ref
	if v == "" {
		return fmt.Errorf("%w: image ref must not be empty", ErrValidation)
	}
	if strings.HasPrefix(v, "/") {
		return nil
	}
	u, err := url.Parse(v)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: image ref must be an absolute URL or start with /", ErrValidation)
	}
	return nil
}

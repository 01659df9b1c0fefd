package lib

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Slugify turns a display name into a URL-safe slug.
func Slugify(name string) string {
	return slug.Make(name)
}

// UniqueSlug derives a slug for name, appending a counter when the plain
// slug is already taken according to exists.
func UniqueSlug(name string, exists func(slug string) (bool, error)) (string, error) {
	base := Slugify(name)

	candidate := base
	for i := 2; ; i++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

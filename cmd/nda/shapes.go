package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nda-dev/nda/array"
)

// parseShape turns a CLI shape argument like "15,3,5" or "(5,4)" into a
// Shape. "()" and the empty string mean a scalar shape.
func parseShape(s string) (array.Shape, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	s = strings.TrimSpace(s)
	if s == "" {
		return array.Shape{}, nil
	}

	parts := strings.Split(s, ",")
	shape := make(array.Shape, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dim, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid shape dimension %q: %w", part, err)
		}
		if dim < 0 {
			return nil, fmt.Errorf("invalid shape dimension %d: must be non-negative", dim)
		}
		shape = append(shape, dim)
	}
	return shape, nil
}

// formatShape renders a shape as "(15, 3, 5)". A scalar shape renders
// as "()".
func formatShape(shape array.Shape) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, dim := range shape {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(dim))
	}
	b.WriteByte(')')
	return b.String()
}

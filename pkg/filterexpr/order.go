package filterexpr

import (
	"errors"
	"fmt"
	"strings"
)

// Order is a parsed "key [asc|desc]" clause validated against a whitelist.
type Order struct {
	Key  string
	Desc bool
}

// ParseOrderBy validates a raw order clause. An empty clause falls back to
// defaultKey ascending.
func ParseOrderBy(raw, defaultKey string, allowed []string) (Order, error) {
	if defaultKey == "" {
		return Order{}, errors.New("order default key required")
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Order{Key: defaultKey}, nil
	}

	parts := strings.Fields(raw)
	if len(parts) > 2 {
		return Order{}, fmt.Errorf("order clause %q has too many terms", raw)
	}

	ord := Order{Key: parts[0]}
	if len(parts) == 2 {
		switch strings.ToLower(parts[1]) {
		case "asc":
		case "desc":
			ord.Desc = true
		default:
			return Order{}, fmt.Errorf("order direction %q must be asc or desc", parts[1])
		}
	}

	for _, key := range allowed {
		if ord.Key == key {
			return ord, nil
		}
	}
	return Order{}, fmt.Errorf("order key %q is not allowed", ord.Key)
}

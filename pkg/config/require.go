package config

import "fmt"

// RequireNonEmpty reports the first env name whose value is empty.
// Arguments come in value, name pairs.
func RequireNonEmpty(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i] == "" {
			return fmt.Errorf("missing required env %s", pairs[i+1])
		}
	}
	return nil
}

package sgdi

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// WriteTextFile writes one domain per line in the given order, newline
// terminated.
func WriteTextFile(path string, domains []string) error {
	var sb strings.Builder
	for _, domain := range domains {
		sb.WriteString(domain)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteJSONFile writes the domains as a JSON array, pretty-printed with
// 2-space indentation.
func WriteJSONFile(path string, domains []string) error {
	if domains == nil {
		domains = []string{}
	}

	data, err := json.MarshalIndent(domains, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode domains: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

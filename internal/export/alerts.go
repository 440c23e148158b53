package export

import (
	"fmt"
	"os"
	"strings"
)

// WriteAlerts persists the run's alert log, one alert per line, in the
// order the alerts were raised.
func WriteAlerts(path string, alerts []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(alerts, "\n")), 0644); err != nil {
		return fmt.Errorf("write alerts: %w", err)
	}
	return nil
}

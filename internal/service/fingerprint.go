package service

import (
	"strings"

	"github.com/MKhiriev/brain-sync/models"
)

// normalizeExportText collapses runs of whitespace into single spaces and
// trims the ends. Whitespace-only input comes back empty.
func normalizeExportText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// exportFingerprint derives a stable content identity for a sorted item.
// Two items with the same category, normalized text and dates are the same
// export regardless of incidental whitespace or casing, which is what makes
// re-running an export after a partial failure safe.
func exportFingerprint(item models.SortedItem) string {
	text := strings.ToLower(normalizeExportText(item.Text))

	return strings.Join([]string{
		string(item.Category),
		text,
		item.DueDate,
		item.Start,
		item.End,
	}, "|")
}

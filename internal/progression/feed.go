package progression

import (
	"cmp"
	"slices"

	"github.com/julianstephens/motivnation/internal/models"
)

// UnknownMemberName labels feed items whose member record is missing
const UnknownMemberName = "Unknown"

// FeedItem is a photo log with the display name of its author
type FeedItem struct {
	Log        models.HabitLog
	MemberName string
}

// CommunityFeed returns the logs that carry a photo, newest date first.
// Logs sharing a date keep their stored order.
func CommunityFeed(logs []models.HabitLog, members []models.Member) []FeedItem {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	var items []FeedItem
	for _, log := range logs {
		if log.Photo == "" {
			continue
		}
		name, ok := names[log.MemberID]
		if !ok {
			name = UnknownMemberName
		}
		items = append(items, FeedItem{Log: log, MemberName: name})
	}

	// YYYY-MM-DD sorts lexically in date order
	slices.SortStableFunc(items, func(a, b FeedItem) int {
		return cmp.Compare(b.Log.Date, a.Log.Date)
	})
	return items
}

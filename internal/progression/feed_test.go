package progression

import (
	"testing"

	"github.com/julianstephens/motivnation/internal/models"
)

func TestCommunityFeed(t *testing.T) {
	members := []models.Member{member("1", "Alex", 0), member("2", "Sam", 0)}
	logs := []models.HabitLog{
		{ID: "a", MemberID: "1", Date: "2025-03-08", Photo: "file:///a.jpg"},
		{ID: "b", MemberID: "2", Date: "2025-03-10"},
		{ID: "c", MemberID: "2", Date: "2025-03-10", Photo: "file:///c.jpg"},
		{ID: "d", MemberID: "9", Date: "2025-03-09", Photo: "file:///d.jpg"},
		{ID: "e", MemberID: "1", Date: "2025-03-10", Photo: "file:///e.jpg", Notes: "morning run"},
	}

	feed := CommunityFeed(logs, members)

	wantIDs := []string{"c", "e", "d", "a"}
	if len(feed) != len(wantIDs) {
		t.Fatalf("got %d items, want %d", len(feed), len(wantIDs))
	}
	for i, id := range wantIDs {
		if feed[i].Log.ID != id {
			t.Errorf("feed[%d] = %s, want %s", i, feed[i].Log.ID, id)
		}
	}
	if feed[2].MemberName != UnknownMemberName {
		t.Errorf("orphan log name = %q, want %q", feed[2].MemberName, UnknownMemberName)
	}
	if feed[1].MemberName != "Alex" {
		t.Errorf("feed[1] name = %q, want Alex", feed[1].MemberName)
	}
}

func TestCommunityFeedEmpty(t *testing.T) {
	if feed := CommunityFeed(nil, nil); len(feed) != 0 {
		t.Errorf("expected empty feed, got %v", feed)
	}
}

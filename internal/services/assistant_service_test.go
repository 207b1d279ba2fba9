package services

import (
	"context"
	"strings"
	"testing"

	"github.com/vytal-health/DashboardBack/internal/models"
)

type memChatLog struct {
	exchanges []models.ChatExchange
}

func (m *memChatLog) Create(_ context.Context, exchange *models.ChatExchange) error {
	m.exchanges = append(m.exchanges, *exchange)
	return nil
}

func (m *memChatLog) ListByUser(_ context.Context, userID int64, limit, offset int) ([]models.ChatExchange, int, error) {
	var out []models.ChatExchange
	for _, e := range m.exchanges {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	total := len(out)
	if offset >= total {
		return []models.ChatExchange{}, total, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (m *memChatLog) DeleteByUser(_ context.Context, userID int64) error {
	kept := m.exchanges[:0]
	for _, e := range m.exchanges {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	m.exchanges = kept
	return nil
}

func TestClassify(t *testing.T) {
	cases := []struct {
		message string
		want    Topic
	}{
		{"Why is my LDL high?", TopicCholesterol},
		{"tell me about cholesterol", TopicCholesterol},
		{"how do I lower inflammation", TopicInflammation},
		{"my hsCRP worries me", TopicInflammation},
		{"what should I eat today", TopicNutrition},
		{"best diet for me?", TopicNutrition},
		{"how am I doing", TopicProgress},
		{"track my progress", TopicProgress},
		{"this is really hard", TopicMotivation},
		{"I'm struggling to keep up", TopicMotivation},
		{"hello there", TopicGeneral},
		{"", TopicGeneral},
	}
	for _, tc := range cases {
		if got := Classify(tc.message); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestClassifyFirstRuleWins(t *testing.T) {
	// mentions both cholesterol and food; the cholesterol rule sits earlier
	// in the chain
	if got := Classify("what food lowers cholesterol?"); got != TopicCholesterol {
		t.Fatalf("expected cholesterol, got %q", got)
	}
}

func TestRespondInterpolatesProfileValues(t *testing.T) {
	profile := models.DefaultProfile()

	reply := Respond(profile, "why is my ldl so high")
	if reply.Topic != TopicCholesterol {
		t.Fatalf("expected cholesterol topic, got %q", reply.Topic)
	}
	if !strings.Contains(reply.Content, "145") {
		t.Fatalf("expected reply to cite the LDL reading, got %q", reply.Content)
	}
	if !strings.Contains(reply.Content, "Your status: Elevated") {
		t.Fatalf("expected the status label rendered into the reply, got %q", reply.Content)
	}
	if len(reply.Suggestions) == 0 {
		t.Fatal("expected follow-up suggestions")
	}
}

func TestCholesterolReplyStatusLabelFollowsBiomarkerStatus(t *testing.T) {
	profile := models.DefaultProfile()
	marker := profile.Biomarkers["ldl"]
	marker.Status = models.StatusBorderlineHigh
	profile.Biomarkers["ldl"] = marker

	reply := Respond(profile, "tell me about cholesterol")
	if !strings.Contains(reply.Content, "Your status: Borderline") {
		t.Fatalf("expected borderline status label, got %q", reply.Content)
	}
}

func TestRespondProgressSummarisesActions(t *testing.T) {
	profile := models.DefaultProfile()
	profile.Actions = []models.Action{
		{ID: "walk", Name: "10-Min Post-Meal Walk", Streak: 4, TodayStatus: models.ActionCompleted},
		{ID: "fiber", Name: "Add 10g Fiber Daily", Streak: 0, TodayStatus: models.ActionPending},
	}

	reply := Respond(profile, "how is my progress")
	if reply.Topic != TopicProgress {
		t.Fatalf("expected progress topic, got %q", reply.Topic)
	}
	if !strings.Contains(reply.Content, "50%") {
		t.Fatalf("expected 50%% completion in reply, got %q", reply.Content)
	}
	if !strings.Contains(reply.Content, "10-Min Post-Meal Walk") {
		t.Fatalf("expected action names in reply, got %q", reply.Content)
	}
}

func TestChatPersistsExchange(t *testing.T) {
	chatLog := &memChatLog{}
	profiles := NewProfileService(newMemSnapshotStore())
	service := NewAssistantService(profiles, chatLog)

	exchange, err := service.Chat(context.Background(), 9, "  why is my cholesterol high  ")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if exchange.Message != "why is my cholesterol high" {
		t.Fatalf("expected trimmed message, got %q", exchange.Message)
	}
	if exchange.Topic != string(TopicCholesterol) {
		t.Fatalf("expected cholesterol topic, got %q", exchange.Topic)
	}
	if exchange.ID == "" {
		t.Fatal("expected generated exchange id")
	}
	if len(chatLog.exchanges) != 1 {
		t.Fatalf("expected 1 stored exchange, got %d", len(chatLog.exchanges))
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	service := NewAssistantService(NewProfileService(newMemSnapshotStore()), &memChatLog{})

	if _, err := service.Chat(context.Background(), 1, "   "); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestHistoryValidatesPagination(t *testing.T) {
	service := NewAssistantService(NewProfileService(newMemSnapshotStore()), &memChatLog{})

	if _, _, err := service.History(context.Background(), 1, 0, 0); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for zero limit, got %v", err)
	}
	if _, _, err := service.History(context.Background(), 1, 10, -1); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for negative offset, got %v", err)
	}
}

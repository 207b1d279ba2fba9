package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vytal-health/DashboardBack/internal/models"
	"github.com/vytal-health/DashboardBack/internal/observability"
)

// Topic is the classification of a user message. Matching is a fixed chain
// of substring rules; the first rule that hits wins, and anything else falls
// through to TopicGeneral.
type Topic string

const (
	TopicCholesterol  Topic = "cholesterol"
	TopicInflammation Topic = "inflammation"
	TopicNutrition    Topic = "nutrition"
	TopicProgress     Topic = "progress"
	TopicMotivation   Topic = "motivation"
	TopicGeneral      Topic = "general"
)

// classifierRules is pure data, kept apart from the matching loop so the
// keyword table and the classifier can be tested independently.
var classifierRules = []struct {
	topic    Topic
	keywords []string
}{
	{TopicCholesterol, []string{"ldl", "cholesterol"}},
	{TopicInflammation, []string{"inflammation", "hscrp", "crp"}},
	{TopicNutrition, []string{"food", "eat", "diet", "meal"}},
	{TopicProgress, []string{"track", "progress", "doing"}},
	{TopicMotivation, []string{"struggling", "hard", "difficult", "motivation"}},
}

// Classify maps free text to a response topic.
func Classify(text string) Topic {
	msg := strings.ToLower(text)
	for _, rule := range classifierRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(msg, keyword) {
				return rule.topic
			}
		}
	}
	return TopicGeneral
}

// Reply is a rendered assistant response.
type Reply struct {
	Topic       Topic
	Content     string
	Suggestions []string
}

type chatLogStore interface {
	Create(ctx context.Context, exchange *models.ChatExchange) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.ChatExchange, int, error)
	DeleteByUser(ctx context.Context, userID int64) error
}

// AssistantService answers user messages from a fixed response table keyed
// by classified topic, interpolating the user's own numbers, and records
// each exchange.
type AssistantService struct {
	profiles *ProfileService
	chatLog  chatLogStore
}

func NewAssistantService(profiles *ProfileService, chatLog chatLogStore) *AssistantService {
	return &AssistantService{profiles: profiles, chatLog: chatLog}
}

func (s *AssistantService) Chat(ctx context.Context, userID int64, message string) (*models.ChatExchange, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return nil, ErrInvalidInput
	}

	profile, _, err := s.profiles.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	reply := Respond(profile, trimmed)
	exchange := &models.ChatExchange{
		ID:          uuid.NewString(),
		UserID:      userID,
		Message:     trimmed,
		Topic:       string(reply.Topic),
		Reply:       reply.Content,
		Suggestions: reply.Suggestions,
	}
	if err := s.chatLog.Create(ctx, exchange); err != nil {
		return nil, err
	}

	observability.RecordChatRequest(string(reply.Topic))
	return exchange, nil
}

func (s *AssistantService) History(ctx context.Context, userID int64, limit, offset int) ([]models.ChatExchange, int, error) {
	if limit <= 0 || offset < 0 {
		return nil, 0, ErrInvalidInput
	}
	return s.chatLog.ListByUser(ctx, userID, limit, offset)
}

func (s *AssistantService) ClearHistory(ctx context.Context, userID int64) error {
	return s.chatLog.DeleteByUser(ctx, userID)
}

// Respond picks the topic for the message and renders its canned reply
// against the profile. Rendering is deterministic for a given profile and
// message.
func Respond(profile *models.Profile, message string) Reply {
	topic := Classify(message)
	builder, ok := replyBuilders[topic]
	if !ok {
		builder = generalReply
	}
	content, suggestions := builder(profile)
	return Reply{Topic: topic, Content: content, Suggestions: suggestions}
}

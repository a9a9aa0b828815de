package roadmap

import (
	"net/http"
	"strings"

	"github.com/codingtracker/backend/internal/apperrors"
)

type RoadmapService struct {
	client Client
	repo   EntryRepository
}

func NewRoadmapService(client Client, repo EntryRepository) *RoadmapService {
	return &RoadmapService{client: client, repo: repo}
}

// Ask generates a roadmap for the topic and saves the question/answer pair
// to the caller's history.
func (s *RoadmapService) Ask(userID uint, topic string) (*AskResponse, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Topic required", nil)
	}

	answer, err := s.client.GenerateRoadmap(topic)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusBadGateway, "AI generation failed", err)
	}

	entry := &Entry{
		UserID:   userID,
		Question: topic,
		Answer:   answer,
	}
	if err := s.repo.Save(entry); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "Error saving roadmap", err)
	}

	return &AskResponse{Topic: topic, Roadmap: answer}, nil
}

func (s *RoadmapService) History(userID uint) ([]Entry, error) {
	entries, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "Fetch failed", err)
	}
	return entries, nil
}

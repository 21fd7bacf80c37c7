package message

import (
	"context"

	domain "github.com/uprisingink/studio-api/internal/domain/message"
	"github.com/uprisingink/studio-api/internal/models"
)

type ThreadReader struct {
	repo domain.Repository
}

func NewThreadReader(repo domain.Repository) *ThreadReader {
	return &ThreadReader{repo: repo}
}

// ThreadFor returns the full ordered conversation between two profiles.
// The thread id is derived from the sorted pair, so the result is identical
// regardless of argument order.
func (uc *ThreadReader) ThreadFor(
	ctx context.Context,
	profileA string,
	profileB string,
) ([]models.Message, error) {
	return uc.repo.ListThread(ctx, domain.ThreadID(profileA, profileB))
}

// UnreadCount is the number of messages addressed to the profile that have
// never been marked read.
func (uc *ThreadReader) UnreadCount(
	ctx context.Context,
	profileID string,
) (int64, error) {
	return uc.repo.CountUnread(ctx, profileID)
}

// ConversationSummary is one row in the portal's conversation list.
type ConversationSummary struct {
	PartnerID   string          `json:"partner_id"`
	PartnerName string          `json:"partner_name"`
	LastMessage *models.Message `json:"last_message"`
	UnreadCount int             `json:"unread_count"`
}

// Conversations collapses the profile's messages into one row per partner,
// newest conversation first.
func (uc *ThreadReader) Conversations(
	ctx context.Context,
	profileID string,
) ([]ConversationSummary, error) {

	msgs, err := uc.repo.ListForProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	byPartner := make(map[string]*ConversationSummary)
	order := make([]string, 0)

	for i := range msgs {
		m := msgs[i]

		partnerID := m.SenderID
		partner := m.Sender
		if partnerID == profileID {
			partnerID = m.RecipientID
			partner = m.Recipient
		}

		s, ok := byPartner[partnerID]
		if !ok {
			// Messages arrive newest first, so the first one seen per
			// partner is the conversation head.
			s = &ConversationSummary{
				PartnerID:   partnerID,
				PartnerName: partner.FullName,
				LastMessage: &msgs[i],
			}
			byPartner[partnerID] = s
			order = append(order, partnerID)
		}

		if m.RecipientID == profileID && m.ReadAt == nil {
			s.UnreadCount++
		}
	}

	out := make([]ConversationSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byPartner[id])
	}
	return out, nil
}

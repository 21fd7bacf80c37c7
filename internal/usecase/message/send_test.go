package message

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	domain "github.com/uprisingink/studio-api/internal/domain/message"
	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/models"
)

// Mock repository

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockMessageRepository) CreateMessage(ctx context.Context, msg *models.Message) error {
	args := m.Called(ctx, msg)
	if msg != nil && msg.ID == "" {
		msg.ID = "msg-1" // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockMessageRepository) GetMessageByID(ctx context.Context, id string) (*models.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageRepository) ListThread(ctx context.Context, threadID string) ([]models.Message, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) ListForProfile(ctx context.Context, profileID string) ([]models.Message, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, messageID string, at time.Time) error {
	args := m.Called(ctx, messageID, at)
	return args.Error(0)
}

func (m *MockMessageRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	args := m.Called(ctx, recipientID)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendToProfile(profileID string, event any) bool {
	args := m.Called(profileID, event)
	return args.Bool(0)
}

// Tests

func TestSendMessage_AssignsThreadAndNotifies(t *testing.T) {
	repo := new(MockMessageRepository)
	repo.On("GetProfileByID", mock.Anything, "bob").Return(&models.Profile{ID: "bob"}, nil)
	repo.On("CreateMessage", mock.Anything, mock.Anything).Return(nil)

	notify := new(MockNotifier)
	notify.On("SendToProfile", "bob", mock.Anything).Return(true)

	uc := NewSendMessage(repo, nil, notify)

	msg, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID:    "alice",
		RecipientID: "bob",
		Content:     "Friday at 2?",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ThreadID("alice", "bob"), msg.ThreadID)
	assert.Equal(t, models.MessageTypeText, msg.MessageType)
	assert.Nil(t, msg.ReadAt)
	notify.AssertCalled(t, "SendToProfile", "bob", mock.Anything)
}

func TestSendMessage_EmptyContentRejected(t *testing.T) {
	repo := new(MockMessageRepository)
	uc := NewSendMessage(repo, nil, nil)

	for _, content := range []string{"", "   "} {
		_, err := uc.Execute(context.Background(), SendMessageInput{
			SenderID:    "alice",
			RecipientID: "bob",
			Content:     content,
		})
		assert.True(t, httperr.IsBusiness(err, "empty_content"))
	}

	repo.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
}

func TestSendMessage_SelfMessageRejected(t *testing.T) {
	uc := NewSendMessage(new(MockMessageRepository), nil, nil)

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID:    "alice",
		RecipientID: "alice",
		Content:     "note to self",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_recipient"))
}

func TestSendMessage_UnknownRecipient(t *testing.T) {
	repo := new(MockMessageRepository)
	repo.On("GetProfileByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	uc := NewSendMessage(repo, nil, nil)

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID:    "alice",
		RecipientID: "ghost",
		Content:     "anyone there?",
	})

	assert.True(t, httperr.IsBusiness(err, "recipient_not_found"))
}

func TestMarkRead_OnlyRecipient(t *testing.T) {
	repo := new(MockMessageRepository)
	msg := &models.Message{ID: "msg-1", SenderID: "alice", RecipientID: "bob"}
	repo.On("GetMessageByID", mock.Anything, "msg-1").Return(msg, nil)

	uc := NewMarkRead(repo)

	_, err := uc.Execute(context.Background(), "msg-1", "alice")
	assert.True(t, httperr.IsBusiness(err, "not_recipient"))
	repo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkRead_StampsAndReturnsMessage(t *testing.T) {
	repo := new(MockMessageRepository)
	readAt := time.Now()
	msg := &models.Message{ID: "msg-1", SenderID: "alice", RecipientID: "bob", ReadAt: &readAt}

	repo.On("GetMessageByID", mock.Anything, "msg-1").Return(msg, nil)
	repo.On("MarkRead", mock.Anything, "msg-1", mock.Anything).Return(nil)

	uc := NewMarkRead(repo)

	got, err := uc.Execute(context.Background(), "msg-1", "bob")

	assert.NoError(t, err)
	assert.NotNil(t, got.ReadAt)
}

func TestConversations_GroupsByPartnerNewestFirst(t *testing.T) {
	repo := new(MockMessageRepository)
	now := time.Now()

	// Newest first, as ListForProfile returns them.
	msgs := []models.Message{
		{
			ID: "m3", SenderID: "carol", RecipientID: "alice",
			Sender:  models.Profile{ID: "carol", FullName: "Carol"},
			Content: "new flash posted", CreatedAt: now,
		},
		{
			ID: "m2", SenderID: "bob", RecipientID: "alice",
			Sender:  models.Profile{ID: "bob", FullName: "Bob"},
			Content: "see you Friday", CreatedAt: now.Add(-time.Hour),
		},
		{
			ID: "m1", SenderID: "alice", RecipientID: "bob",
			Recipient: models.Profile{ID: "bob", FullName: "Bob"},
			Content:   "booked!", CreatedAt: now.Add(-2 * time.Hour),
		},
	}
	repo.On("ListForProfile", mock.Anything, "alice").Return(msgs, nil)

	uc := NewThreadReader(repo)

	convs, err := uc.Conversations(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Len(t, convs, 2)
	assert.Equal(t, "carol", convs[0].PartnerID)
	assert.Equal(t, "bob", convs[1].PartnerID)
	assert.Equal(t, "m3", convs[0].LastMessage.ID)
	assert.Equal(t, "m2", convs[1].LastMessage.ID, "last message is the newest in the pair")
	assert.Equal(t, 1, convs[0].UnreadCount)
	assert.Equal(t, 1, convs[1].UnreadCount, "own sent messages never count as unread")
}

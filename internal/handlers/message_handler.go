package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/uprisingink/studio-api/internal/httperr"
	"github.com/uprisingink/studio-api/internal/httpresp"
	"github.com/uprisingink/studio-api/internal/middleware"
	usecase "github.com/uprisingink/studio-api/internal/usecase/message"
)

// ======================================================
// HANDLER
// ======================================================

type MessageHandler struct {
	send     *usecase.SendMessage
	reader   *usecase.ThreadReader
	markRead *usecase.MarkRead
}

func NewMessageHandler(
	send *usecase.SendMessage,
	reader *usecase.ThreadReader,
	markRead *usecase.MarkRead,
) *MessageHandler {
	return &MessageHandler{
		send:     send,
		reader:   reader,
		markRead: markRead,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SendMessageRequest struct {
	RecipientID   string  `json:"recipient_id" binding:"required"`
	Content       string  `json:"content"`
	MessageType   string  `json:"message_type"`
	AppointmentID *string `json:"appointment_id"`
}

// ======================================================
// SEND
// ======================================================

func (h *MessageHandler) Send(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid message payload.")
		return
	}

	msg, err := h.send.Execute(c.Request.Context(), usecase.SendMessageInput{
		SenderID:      profileID,
		RecipientID:   req.RecipientID,
		Content:       req.Content,
		MessageType:   req.MessageType,
		AppointmentID: req.AppointmentID,
	})
	if err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "send_failed", "Could not send message.")
		}
		return
	}

	httpresp.Created(c, msg)
}

// ======================================================
// READ SIDE
// ======================================================

// Thread returns the full conversation between the caller and a partner,
// oldest first. Either participant gets the identical result.
func (h *MessageHandler) Thread(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)
	partnerID := c.Param("partnerId")

	msgs, err := h.reader.ThreadFor(c.Request.Context(), profileID, partnerID)
	if err != nil {
		httperr.Internal(c, "thread_failed", "Could not load conversation.")
		return
	}

	httpresp.List(c, msgs)
}

func (h *MessageHandler) Conversations(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	convs, err := h.reader.Conversations(c.Request.Context(), profileID)
	if err != nil {
		httperr.Internal(c, "conversations_failed", "Could not load conversations.")
		return
	}

	httpresp.List(c, convs)
}

func (h *MessageHandler) UnreadCount(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	count, err := h.reader.UnreadCount(c.Request.Context(), profileID)
	if err != nil {
		httperr.Internal(c, "unread_count_failed", "Could not count unread messages.")
		return
	}

	httpresp.OK(c, gin.H{"unread": count})
}

// ======================================================
// MARK READ
// ======================================================

func (h *MessageHandler) MarkRead(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)
	id := c.Param("id")

	msg, err := h.markRead.Execute(c.Request.Context(), id, profileID)
	if err != nil {
		if !writeBusiness(c, err) {
			httperr.Internal(c, "mark_read_failed", "Could not mark message read.")
		}
		return
	}

	httpresp.OK(c, msg)
}

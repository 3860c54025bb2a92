package services

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/db"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// ConversationStore is the conversation persistence surface the service needs
type ConversationStore interface {
	FindByPair(ctx context.Context, user1ID, user2ID int64) (*models.Conversation, error)
	Create(ctx context.Context, user1ID, user2ID int64) (*models.Conversation, error)
	GetByID(ctx context.Context, id int64) (*models.Conversation, error)
	GetAllForUser(ctx context.Context, userID int64) ([]repositories.ConversationListItem, error)
	TouchLastMessageInTx(ctx context.Context, tx pgx.Tx, conversationID int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

// MessageStore is the message persistence surface the service needs
type MessageStore interface {
	GetPage(ctx context.Context, conversationID int64, page, pageSize int) ([]models.Message, int64, error)
	CreateInTx(ctx context.Context, tx pgx.Tx, msg *models.Message) error
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	MarkRead(ctx context.Context, id int64) error
	MarkConversationRead(ctx context.Context, conversationID, readerID int64) (int64, error)
}

// MessageService defines the interface for direct-messaging operations
type MessageService interface {
	CreateOrGetConversation(ctx context.Context, req *dto.CreateConversationRequest) (*dto.CreateConversationResponse, bool, error)
	GetConversations(ctx context.Context, userID int64) (*dto.ConversationListResponse, error)
	GetMessages(ctx context.Context, conversationID, userID int64, page, limit int) (*dto.MessageListResponse, error)
	SendMessage(ctx context.Context, conversationID int64, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	MarkMessageRead(ctx context.Context, messageID, userID int64) error
	DeleteConversation(ctx context.Context, conversationID, userID int64) error
}

type messageServiceImpl struct {
	convRepo ConversationStore
	msgRepo  MessageStore
	userRepo UserChecker
	runInTx  func(ctx context.Context, fn db.TransactionFn) error
	logger   zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(convRepo ConversationStore, msgRepo MessageStore, userRepo UserChecker, pool *pgxpool.Pool, logger zerolog.Logger) MessageService {
	return &messageServiceImpl{
		convRepo: convRepo,
		msgRepo:  msgRepo,
		userRepo: userRepo,
		runInTx: func(ctx context.Context, fn db.TransactionFn) error {
			return db.WithTransaction(ctx, pool, fn)
		},
		logger: logger,
	}
}

// CreateOrGetConversation returns the conversation between the two users,
// creating it when none exists in either participant ordering. The bool
// reports whether a new conversation was created.
func (s *messageServiceImpl) CreateOrGetConversation(ctx context.Context, req *dto.CreateConversationRequest) (*dto.CreateConversationResponse, bool, error) {
	if req.User1ID == req.User2ID {
		return nil, false, apperrors.ErrSelfConversation
	}

	for _, id := range []int64{req.User1ID, req.User2ID} {
		exists, err := s.userRepo.Exists(ctx, id)
		if err != nil {
			return nil, false, err
		}
		if !exists {
			return nil, false, apperrors.ErrUserNotFound
		}
	}

	conv, err := s.convRepo.FindByPair(ctx, req.User1ID, req.User2ID)
	if err == nil {
		return &dto.CreateConversationResponse{
			Conversation: dto.ConversationRef{ID: helpers.FormatID(conv.ID), Created: false},
		}, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, false, err
	}

	conv, err = s.convRepo.Create(ctx, req.User1ID, req.User2ID)
	if err != nil {
		return nil, false, err
	}

	s.logger.Info().Int64("conversation_id", conv.ID).Msg("Conversation created")

	return &dto.CreateConversationResponse{
		Conversation: dto.ConversationRef{ID: helpers.FormatID(conv.ID), Created: true},
	}, true, nil
}

// GetConversations lists the viewer's conversations, most recently active first
func (s *messageServiceImpl) GetConversations(ctx context.Context, userID int64) (*dto.ConversationListResponse, error) {
	items, err := s.convRepo.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	conversations := make([]dto.ConversationResponse, 0, len(items))
	for _, item := range items {
		resp := dto.ConversationResponse{
			ID: helpers.FormatID(item.Conversation.ID),
			OtherUser: dto.ConversationUser{
				ID:     helpers.FormatID(item.OtherUser.ID),
				Name:   item.OtherUser.Name,
				Avatar: item.OtherUser.Avatar,
			},
			UnreadCount:   item.UnreadCount,
			LastMessageAt: formatTime(item.Conversation.LastMessageAt),
		}
		if item.LastMessage != nil {
			resp.LastMessage = &dto.LastMessagePreview{
				Content:   item.LastMessage.Content,
				Timestamp: formatTime(item.LastMessage.CreatedAt),
				SenderID:  helpers.FormatID(item.LastMessage.SenderID),
			}
		}
		conversations = append(conversations, resp)
	}

	return &dto.ConversationListResponse{Conversations: conversations}, nil
}

// GetMessages returns one page of a conversation ordered oldest-first within
// the page, and marks every incoming unread message in the conversation read.
func (s *messageServiceImpl) GetMessages(ctx context.Context, conversationID, userID int64, page, limit int) (*dto.MessageListResponse, error) {
	conv, err := s.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, apperrors.ErrNotParticipant
	}

	messages, total, err := s.msgRepo.GetPage(ctx, conversationID, page, limit)
	if err != nil {
		return nil, err
	}

	// Reading the thread clears the whole conversation's incoming unread
	// messages, not just the fetched page.
	if _, err := s.msgRepo.MarkConversationRead(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	items := make([]dto.MessageResponse, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		// The page was fetched before the mark-read; incoming messages in
		// it are read by now, so report them that way.
		if messages[i].SenderID != userID {
			messages[i].IsRead = true
		}
		items = append(items, toMessageResponse(&messages[i]))
	}

	return &dto.MessageListResponse{
		Messages:   items,
		Pagination: paginate(page, limit, total),
	}, nil
}

func toMessageResponse(msg *models.Message) dto.MessageResponse {
	resp := dto.MessageResponse{
		ID:        helpers.FormatID(msg.ID),
		Content:   msg.Content,
		SenderID:  helpers.FormatID(msg.SenderID),
		IsRead:    msg.IsRead,
		Timestamp: formatTime(msg.CreatedAt),
	}
	if msg.Sender != nil {
		resp.Sender = dto.MessageSender{
			ID:     helpers.FormatID(msg.Sender.ID),
			Name:   msg.Sender.Name,
			Avatar: msg.Sender.Avatar,
		}
	}
	return resp
}

// SendMessage stores a message and advances the conversation's
// last_message_at in the same transaction.
func (s *messageServiceImpl) SendMessage(ctx context.Context, conversationID int64, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewBadRequestError("Message content cannot be empty")
	}

	conv, err := s.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(req.SenderID) {
		return nil, apperrors.ErrNotParticipant
	}

	sender, err := s.userRepo.GetByID(ctx, req.SenderID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ConversationID: conversationID,
		SenderID:       req.SenderID,
		Content:        content,
	}
	err = s.runInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.msgRepo.CreateInTx(ctx, tx, msg); err != nil {
			return err
		}
		return s.convRepo.TouchLastMessageInTx(ctx, tx, conversationID, msg.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	msg.Sender = sender

	return &dto.SendMessageResponse{
		Message: "Message sent successfully",
		Data:    toMessageResponse(msg),
	}, nil
}

// MarkMessageRead flags a single message as read. The sender cannot mark
// their own message.
func (s *messageServiceImpl) MarkMessageRead(ctx context.Context, messageID, userID int64) error {
	msg, err := s.msgRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.SenderID == userID {
		return apperrors.ErrOwnMessage
	}
	return s.msgRepo.MarkRead(ctx, messageID)
}

// DeleteConversation removes a conversation the viewer participates in.
// Messages go with it via FK cascade.
func (s *messageServiceImpl) DeleteConversation(ctx context.Context, conversationID, userID int64) error {
	conv, err := s.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conv.HasParticipant(userID) {
		return apperrors.ErrNotParticipant
	}
	return s.convRepo.Delete(ctx, conversationID)
}

package service

import (
	"errors"
	"fmt"

	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/repository"
)

// MessageStore is the persistence surface for the chat placeholder.
// Implemented by repository.MessageRepository.
type MessageStore interface {
	Create(message *models.Message) error
	ListConversation(userID, peerID uint) ([]models.Message, error)
}

type MessageService struct {
	messages MessageStore
	users    UserStore
}

func NewMessageService(messages MessageStore, users UserStore) *MessageService {
	return &MessageService{messages: messages, users: users}
}

// Send stores a message from the authenticated user to the receiver.
func (s *MessageService) Send(senderID, receiverID uint, content string) (*models.Message, error) {
	if receiverID == senderID {
		return nil, errors.New("Cannot send a message to yourself")
	}

	if _, err := s.users.FindByID(receiverID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.New("Receiver not found")
		}
		return nil, err
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.messages.Create(message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return message, nil
}

// Conversation lists all messages between the authenticated user and a peer,
// oldest first.
func (s *MessageService) Conversation(userID, peerID uint) ([]models.Message, error) {
	return s.messages.ListConversation(userID, peerID)
}

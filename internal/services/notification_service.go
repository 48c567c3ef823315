package services

import (
	"food_ordering/internal/models"
	"food_ordering/internal/repository"
)

type NotificationService interface {
	Notify(userID uint, title, message string, notificationType models.NotificationType) (*models.Notification, error)
	ListByUser(userID uint) ([]models.Notification, error)
	MarkRead(id, userID uint) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) Notify(userID uint, title, message string, notificationType models.NotificationType) (*models.Notification, error) {
	if notificationType == "" {
		notificationType = models.NotificationInfo
	}

	notification := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notificationType,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *notificationService) ListByUser(userID uint) ([]models.Notification, error) {
	return s.notificationRepo.ListByUser(userID)
}

func (s *notificationService) MarkRead(id, userID uint) error {
	return s.notificationRepo.MarkRead(id, userID)
}

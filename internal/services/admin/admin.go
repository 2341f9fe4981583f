// Package admin implements the admin-elevation request workflow:
// none -> pending -> approved|rejected, pending again on resubmission.
package admin

import (
	"context"
	"errors"
	"log/slog"

	"moviecatalog/proj/internal/domain/models"
	"moviecatalog/proj/internal/storage"
)

var (
	ErrRequestNotFound = errors.New("admin request not found")
	ErrRequestPending  = errors.New("you already have a pending admin request")
	ErrInvalidAction   = errors.New(`invalid action, must be "approve" or "reject"`)
)

type AdminRequestsStorage interface {
	Upsert(ctx context.Context, userID int64, message *string) (*models.AdminRequest, error)
	Get(ctx context.Context, id int64) (*models.AdminRequest, error)
	GetByUser(ctx context.Context, userID int64) (*models.AdminRequest, error)
	ListPending(ctx context.Context) ([]models.AdminRequestWithUser, error)
	Decide(ctx context.Context, id, userID, reviewerID int64, approved bool) error
}

type UsersStorage interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type MailProvider interface {
	Send(recipient string, tmplName string, tmplData any) error
}

type TaskExecutor interface {
	Add(task func())
}

type AdminService struct {
	log          *slog.Logger
	storage      AdminRequestsStorage
	users        UsersStorage
	mailer       MailProvider
	taskExecutor TaskExecutor
	adminEmail   string
}

func New(log *slog.Logger, storage AdminRequestsStorage, users UsersStorage, mailer MailProvider, taskExecutor TaskExecutor, adminEmail string) *AdminService {
	return &AdminService{
		log:          log,
		storage:      storage,
		users:        users,
		mailer:       mailer,
		taskExecutor: taskExecutor,
		adminEmail:   adminEmail,
	}
}

// Request submits or resubmits the user's admin request. A still-pending
// request is rejected; a decided one resets to pending via upsert.
func (s *AdminService) Request(ctx context.Context, user *models.User, message *string) (*models.AdminRequest, error) {
	const op = "admin.AdminService.Request"
	log := s.log.With("op", op, "user_id", user.ID)
	existing, err := s.storage.GetByUser(ctx, user.ID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Error(err.Error())
		return nil, err
	}
	if existing != nil && existing.Status == models.AdminRequestPending {
		log.Info("pending request already exists")
		return nil, ErrRequestPending
	}
	request, err := s.storage.Upsert(ctx, user.ID, message)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if s.adminEmail != "" {
		username := user.Username
		s.taskExecutor.Add(func() {
			s.notify(s.adminEmail, "admin_request_submitted.html", map[string]any{
				"username": username,
				"message":  message,
			})
		})
	}
	return request, nil
}

func (s *AdminService) ListPending(ctx context.Context) ([]models.AdminRequestWithUser, error) {
	const op = "admin.AdminService.ListPending"
	requests, err := s.storage.ListPending(ctx)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return requests, nil
}

// Decide approves or rejects a request; approval elevates the requesting
// user. The requester gets an email about the outcome, off the request path.
func (s *AdminService) Decide(ctx context.Context, id int64, action string, reviewer *models.User) error {
	const op = "admin.AdminService.Decide"
	log := s.log.With("op", op, "id", id, "action", action, "reviewer_id", reviewer.ID)
	if action != "approve" && action != "reject" {
		return ErrInvalidAction
	}
	request, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("admin request not found")
			return ErrRequestNotFound
		}
		log.Error(err.Error())
		return err
	}
	approved := action == "approve"
	if err := s.storage.Decide(ctx, id, request.UserID, reviewer.ID, approved); err != nil {
		log.Error(err.Error())
		return err
	}
	requester, err := s.users.GetByID(ctx, request.UserID)
	if err != nil {
		// Decision already committed; losing the courtesy email is fine.
		log.Error(err.Error())
		return nil
	}
	s.taskExecutor.Add(func() {
		s.notify(requester.Email, "admin_request_decided.html", map[string]any{
			"username": requester.Username,
			"approved": approved,
		})
	})
	return nil
}

func (s *AdminService) notify(recipient, tmplName string, tmplData any) {
	if err := s.mailer.Send(recipient, tmplName, tmplData); err != nil {
		s.log.Error("Error sending admin notification email", "errMsg", err.Error())
	}
}

package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/minimarket/user-service/internal/domain/entity"
	repo "github.com/minimarket/user-service/internal/domain/repository"
	"github.com/minimarket/user-service/pkg/events"
	"github.com/minimarket/user-service/pkg/helpers"
)

// ErrMissingFields is returned when a creation request lacks a required
// field (email, first name or password).
var ErrMissingFields = errors.New("email, firstname and password are required")

// Service implements the user operations on top of the repository. The
// publisher and the Elasticsearch sink are optional; both are skipped when
// nil and never fail a request.
type Service struct {
	Repo         repo.UserRepository
	Logger       *logrus.Logger
	Publisher    *helpers.RabbitPublisher
	ES           *elasticsearch.Client
	ESAuditIndex string
	// Iterations is the PBKDF2 count applied to new records.
	Iterations int
}

func NewService(r repo.UserRepository, logger *logrus.Logger, pub *helpers.RabbitPublisher, es *elasticsearch.Client, esIndex string, iterations int) *Service {
	if iterations <= 0 {
		iterations = helpers.DefaultIterations
	}
	return &Service{Repo: r, Logger: logger, Publisher: pub, ES: es, ESAuditIndex: esIndex, Iterations: iterations}
}

// Create runs the credential hashing pipeline on the caller-supplied
// plaintext and inserts the record. The persisted record never retains the
// plaintext: the password field is replaced with the derived hash before
// the repository sees it.
func (s *Service) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	if u.Email == "" || u.Firstname == "" || u.Password == "" {
		return nil, ErrMissingFields
	}

	salt, err := helpers.GenerateSalt()
	if err != nil {
		// No fallback to a weaker randomness source.
		s.Logger.WithError(err).Error("secure randomness unavailable")
		return nil, err
	}
	u.Password = helpers.DerivePassword(u.Password, salt, s.Iterations)
	u.Salt = helpers.EncodeSalt(salt)
	u.HashIterations = s.Iterations
	u.CreatedDate = time.Now().UTC()

	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.emit(ctx, events.UserEvent{
		Type:      events.UserCreated,
		UserID:    u.ID.Hex(),
		Email:     u.Email,
		Firstname: u.Firstname,
		At:        u.CreatedDate,
	})
	s.audit(ctx, "user.created", u.ID.Hex())
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]entity.User, error) {
	return s.Repo.GetAll(ctx)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.Repo.GetByEmail(ctx, email)
}

func (s *Service) GetByOwnerID(ctx context.Context, ownerID string) ([]entity.User, error) {
	return s.Repo.GetByOwnerID(ctx, ownerID)
}

// Update replaces the whole record at id with the supplied state.
func (s *Service) Update(ctx context.Context, id string, u *entity.User) error {
	if err := s.Repo.Update(ctx, id, u); err != nil {
		return err
	}
	s.emit(ctx, events.UserEvent{Type: events.UserUpdated, UserID: id, Email: u.Email, At: time.Now().UTC()})
	s.audit(ctx, "user.updated", id)
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.emit(ctx, events.UserEvent{Type: events.UserDeleted, UserID: id, At: time.Now().UTC()})
	s.audit(ctx, "user.deleted", id)
	return nil
}

func (s *Service) emit(ctx context.Context, ev events.UserEvent) {
	if err := s.Publisher.PublishJSON(ctx, ev); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("type", ev.Type).Warn("event publish failed")
	}
}

// audit indexes a structured operational event into the audit index,
// best effort with a short timeout.
func (s *Service) audit(ctx context.Context, action, userID string) {
	if s.ES == nil || s.ESAuditIndex == "" {
		return
	}
	doc := map[string]any{
		"action":  action,
		"user_id": userID,
		"at":      time.Now().UTC().Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESAuditIndex, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("audit index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("user_id", userID).Warn("audit index response error")
	}
}

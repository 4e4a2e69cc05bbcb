package service

import (
	"clockwise/infras/otel"
	"clockwise/internal/domains/catalog"
	"clockwise/internal/domains/session/model"
	"clockwise/internal/domains/session/repository"
	"clockwise/shared/constant"
	"clockwise/shared/timezone"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var errEmptyID = errors.New("failed to load session: empty id")

type Session interface {
	Load(ctx context.Context, id string) (*model.Session, error)
	List(ctx context.Context, id string) ([]string, error)
	Add(ctx context.Context, id, label string) (*model.Session, error)
	Remove(ctx context.Context, id string, index int) (*model.Session, error)
	Reset(ctx context.Context, id string) (*model.Session, error)
	Flash(ctx context.Context, id string, notice model.Notice) error
	TakeNotices(ctx context.Context, id string) ([]model.Notice, error)
}

type serviceImpl struct {
	repo    repository.Session
	catalog catalog.Catalog
	otel    otel.Otel
}

func New(repo repository.Session, catalog catalog.Catalog, otel otel.Otel) Session {
	return &serviceImpl{
		repo:    repo,
		catalog: catalog,
		otel:    otel,
	}
}

// Load returns the stored session, creating the default one when none exists yet.
// Loading an existing session saves it again, so the store TTL counts idle time only.
func (s *serviceImpl) Load(ctx context.Context, id string) (session *model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, created, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if !created {
		if err = s.save(ctx, session); err != nil {
			return nil, err
		}
	}

	return session, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (*model.Session, error) {
	session, _, err := s.fetch(ctx, id)

	return session, err
}

func (s *serviceImpl) fetch(ctx context.Context, id string) (*model.Session, bool, error) {
	if id == "" {
		return nil, false, errEmptyID
	}

	session, err := s.repo.Get(ctx, id)
	if err == nil {
		return session, false, nil
	}

	if !errors.Is(err, repository.ErrNotFound) {
		log.Error().Err(err).Str("session", id).Msg("failed to load session")

		return nil, false, fmt.Errorf("failed to load session: %w", err)
	}

	session = model.New(id)
	if err = s.save(ctx, session); err != nil {
		return nil, false, err
	}

	log.Debug().Str("session", id).Msg("created default session")

	return session, true, nil
}

func (s *serviceImpl) save(ctx context.Context, session *model.Session) error {
	session.Touch(timezone.Now())

	if err := s.repo.Save(ctx, session); err != nil {
		log.Error().Err(err).Str("session", session.ID).Msg("failed to save session")

		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *serviceImpl) List(ctx context.Context, id string) (labels []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return session.List(), nil
}

// Add appends label to the session. Labels outside the catalog are rejected.
func (s *serviceImpl) Add(ctx context.Context, id, label string) (session *model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("clock.label", label)

	session, err = s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.CanAdd() && model.IsSelection(label) && !s.catalog.Contains(label) {
		return session, fmt.Errorf("%w: %s", catalog.ErrUnknownLabel, label)
	}

	if err = session.Add(label); err != nil {
		return session, err
	}

	if err = s.save(ctx, session); err != nil {
		return nil, err
	}

	scope.AddEvent("clock.added", map[string]any{
		"clock.label": label,
		"clock.count": session.Len(),
	})

	return session, nil
}

func (s *serviceImpl) Remove(ctx context.Context, id string, index int) (session *model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("clock.index", index)

	session, err = s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err = session.Remove(index); err != nil {
		return session, err
	}

	if err = s.save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Reset drops the stored session, notices included, and starts over with the default clock.
func (s *serviceImpl) Reset(ctx context.Context, id string) (session *model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reset")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == "" {
		return nil, errEmptyID
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("session", id).Msg("failed to drop session")

		return nil, fmt.Errorf("failed to reset session: %w", err)
	}

	session = model.New(id)
	if err = s.save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Flash queues a notice for the next render.
func (s *serviceImpl) Flash(ctx context.Context, id string, notice model.Notice) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Flash")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	session.Push(notice)

	return s.save(ctx, session)
}

// TakeNotices returns and clears the queued notices.
func (s *serviceImpl) TakeNotices(ctx context.Context, id string) (notices []model.Notice, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TakeNotices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	notices = session.TakeNotices()
	if len(notices) == 0 {
		return nil, nil
	}

	if err = s.save(ctx, session); err != nil {
		return nil, err
	}

	return notices, nil
}

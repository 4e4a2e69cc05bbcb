package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"clockwise/config"
	"clockwise/infras/otel"
	"clockwise/internal/domains/session/model"
	"clockwise/shared"
	"clockwise/shared/cache"
	"clockwise/shared/constant"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("session not found")

type Session interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	cache cache.Cache
	cfg   *config.Config
	otel  otel.Otel
}

func New(cache cache.Cache, cfg *config.Config, otel otel.Otel) Session {
	return &repositoryImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func key(id string) string {
	return shared.BuildCacheKey(constant.CacheKeySession, id)
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (session *model.Session, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("session.id", id)

	session = &model.Session{}

	err = r.cache.Get(ctx, key(id), session)
	if err != nil {
		if errors.Is(err, cache.Nil) {
			return nil, ErrNotFound
		}

		log.Error().Err(err).Str("session", id).Msg("failed to read session")

		return nil, fmt.Errorf("failed to get %s: %w", model.EntityName, err)
	}

	return session, nil
}

func (r *repositoryImpl) Save(ctx context.Context, session *model.Session) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"session.id":     session.ID,
		"session.clocks": session.Len(),
	})

	if err = r.cache.Save(ctx, key(session.ID), session, r.cfg.SessionTTLSeconds()); err != nil {
		log.Error().Err(err).Str("session", session.ID).Msg("failed to save session")

		return fmt.Errorf("failed to save %s: %w", model.EntityName, err)
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Delete(ctx, key(id)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", model.EntityName, err)
	}

	return nil
}

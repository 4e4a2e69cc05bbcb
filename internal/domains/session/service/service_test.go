package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"clockwise/infras/otel/mocks"
	"clockwise/internal/domains/catalog"
	sessionMocks "clockwise/internal/domains/session/mocks"
	"clockwise/internal/domains/session/model"
	"clockwise/internal/domains/session/repository"
	"clockwise/internal/domains/session/service"
)

const sessionID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func storedSession(labels ...string) *model.Session {
	return &model.Session{ID: sessionID, Labels: labels}
}

func TestSessionService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	svc := service.New(mockRepo, catalog.NewDefault(), mocks.NewOtel())

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantLabels []string
	}{
		{
			name: "existing session",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), sessionID).
					Return(storedSession("Japan/Tokyo"), nil)
				mockRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *model.Session) error {
						assert.False(t, s.ModifiedAt.IsZero())

						return nil
					})
			},
			wantLabels: []string{"Japan/Tokyo"},
		},
		{
			name: "existing session fails to refresh",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), sessionID).
					Return(storedSession("Japan/Tokyo"), nil)
				mockRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(errors.New("write failed"))
			},
			wantErr: true,
		},
		{
			name: "missing session gets the default clock",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), sessionID).
					Return(nil, repository.ErrNotFound)
				mockRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *model.Session) error {
						assert.Equal(t, []string{model.DefaultLabel}, s.Labels)
						assert.False(t, s.CreatedAt.IsZero())

						return nil
					})
			},
			wantLabels: []string{model.DefaultLabel},
		},
		{
			name: "store failure",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), sessionID).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "save failure on create",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), sessionID).
					Return(nil, repository.ErrNotFound)
				mockRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(errors.New("write failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			session, err := svc.Load(context.Background(), sessionID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, session)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLabels, session.List())
		})
	}
}

func TestSessionService_LoadRequiresID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(sessionMocks.NewMockSession(ctrl), catalog.NewDefault(), mocks.NewOtel())

	_, err := svc.Load(context.Background(), "")
	assert.Error(t, err)
}

func TestSessionService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	svc := service.New(mockRepo, catalog.NewDefault(), mocks.NewOtel())

	full := []string{
		"Pakistan/Islamabad", "Japan/Tokyo", "Egypt/Cairo",
		"Fiji/Suva", "Iran/Tehran", "Ghana/Accra",
	}

	tests := []struct {
		name       string
		stored     []string
		label      string
		expectSave bool
		wantErr    error
		wantLabels []string
	}{
		{
			name:       "adds a catalog label",
			stored:     []string{"Pakistan/Islamabad"},
			label:      "Japan/Tokyo",
			expectSave: true,
			wantLabels: []string{"Pakistan/Islamabad", "Japan/Tokyo"},
		},
		{
			name:       "full session",
			stored:     full,
			label:      "Nepal/Kathmandu",
			wantErr:    model.ErrSessionFull,
			wantLabels: full,
		},
		{
			name:       "placeholder",
			stored:     []string{"Pakistan/Islamabad"},
			label:      model.NoSelection,
			wantErr:    model.ErrNoSelection,
			wantLabels: []string{"Pakistan/Islamabad"},
		},
		{
			name:       "unknown label",
			stored:     []string{"Pakistan/Islamabad"},
			label:      "Atlantis/Capital",
			wantErr:    catalog.ErrUnknownLabel,
			wantLabels: []string{"Pakistan/Islamabad"},
		},
		{
			name:       "duplicate",
			stored:     []string{"Pakistan/Islamabad"},
			label:      "Pakistan/Islamabad",
			wantErr:    model.ErrAlreadySelected,
			wantLabels: []string{"Pakistan/Islamabad"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				Get(gomock.Any(), sessionID).
				Return(storedSession(tt.stored...), nil)

			if tt.expectSave {
				mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			}

			session, err := svc.Add(context.Background(), sessionID, tt.label)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			require.NotNil(t, session)
			assert.Equal(t, tt.wantLabels, session.List())
		})
	}
}

func TestSessionService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	svc := service.New(mockRepo, catalog.NewDefault(), mocks.NewOtel())

	tests := []struct {
		name       string
		index      int
		expectSave bool
		wantErr    error
		wantLabels []string
	}{
		{
			name:       "removes middle clock",
			index:      1,
			expectSave: true,
			wantLabels: []string{"Pakistan/Islamabad", "Egypt/Cairo"},
		},
		{
			name:       "out of range",
			index:      3,
			wantErr:    model.ErrIndexOutOfRange,
			wantLabels: []string{"Pakistan/Islamabad", "Japan/Tokyo", "Egypt/Cairo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				Get(gomock.Any(), sessionID).
				Return(storedSession("Pakistan/Islamabad", "Japan/Tokyo", "Egypt/Cairo"), nil)

			if tt.expectSave {
				mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			}

			session, err := svc.Remove(context.Background(), sessionID, tt.index)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantLabels, session.List())
		})
	}
}

func TestSessionService_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	svc := service.New(mockRepo, catalog.NewDefault(), mocks.NewOtel())

	gomock.InOrder(
		mockRepo.EXPECT().Delete(gomock.Any(), sessionID).Return(nil),
		mockRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *model.Session) error {
				assert.Equal(t, sessionID, s.ID)
				assert.Empty(t, s.Notices)

				return nil
			}),
	)

	session, err := svc.Reset(context.Background(), sessionID)

	require.NoError(t, err)
	assert.Equal(t, []string{model.DefaultLabel}, session.List())
}

func TestSessionService_ResetFailures(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *sessionMocks.MockSession)
	}{
		{
			name:      "empty id",
			id:        "",
			setupMock: func(_ *sessionMocks.MockSession) {},
		},
		{
			name: "delete fails",
			id:   sessionID,
			setupMock: func(repo *sessionMocks.MockSession) {
				repo.EXPECT().Delete(gomock.Any(), sessionID).Return(errors.New("connection refused"))
			},
		},
		{
			name: "save fails",
			id:   sessionID,
			setupMock: func(repo *sessionMocks.MockSession) {
				repo.EXPECT().Delete(gomock.Any(), sessionID).Return(nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := sessionMocks.NewMockSession(ctrl)
			tt.setupMock(mockRepo)

			session, err := service.New(mockRepo, catalog.NewDefault(), mocks.NewOtel()).Reset(context.Background(), tt.id)

			assert.Error(t, err)
			assert.Nil(t, session)
		})
	}
}

func TestSessionService_Notices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	svc := service.New(mockRepo, catalog.NewDefault(), mocks.NewOtel())

	stored := storedSession("Japan/Tokyo")
	notice := model.Notice{Level: model.LevelWarning, Message: "Please select a timezone first!"}

	mockRepo.EXPECT().Get(gomock.Any(), sessionID).Return(stored, nil).Times(3)
	mockRepo.EXPECT().Save(gomock.Any(), stored).Return(nil).Times(2)

	require.NoError(t, svc.Flash(context.Background(), sessionID, notice))

	notices, err := svc.TakeNotices(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, []model.Notice{notice}, notices)

	notices, err = svc.TakeNotices(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Empty(t, notices)
}

func TestSessionService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := sessionMocks.NewMockSession(ctrl)
	svc := service.New(mockRepo, catalog.NewDefault(), mocks.NewOtel())

	mockRepo.EXPECT().
		Get(gomock.Any(), sessionID).
		Return(storedSession("Japan/Tokyo", "Egypt/Cairo"), nil)

	labels, err := svc.List(context.Background(), sessionID)

	require.NoError(t, err)
	assert.Equal(t, []string{"Japan/Tokyo", "Egypt/Cairo"}, labels)
}

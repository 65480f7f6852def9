package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"trafficalert/internal/domain/entity"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/domain/repository"
	mockRepo "trafficalert/internal/mocks/repository"
	mockSvc "trafficalert/internal/mocks/service"
	"trafficalert/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testRegisteredAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type subscriberFixture struct {
	service    *subscriberService
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	repo       *mockRepo.MockSubscriberRepository
	classifier *mockSvc.MockGeoClassifier
}

func createTestSubscriberService(t *testing.T) *subscriberFixture {
	t.Helper()

	f := &subscriberFixture{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		repo:       mockRepo.NewMockSubscriberRepository(t),
		classifier: mockSvc.NewMockGeoClassifier(t),
	}

	svc := NewSubscriberService(SubscriberServiceParams{
		TxManager:      f.txManager,
		SubscriberRepo: f.repo,
		Classifier:     f.classifier,
		Logger:         createTestLogger(),
	})
	f.service = svc.(*subscriberService)
	f.service.now = func() time.Time { return testRegisteredAt }

	return f
}

// expectTransaction runs the transaction body against the fixture's repository.
func (f *subscriberFixture) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
	f.factory.EXPECT().NewSubscriberRepository().Return(f.repo)
}

func TestSubscriberService_Register_Success(t *testing.T) {
	f := createTestSubscriberService(t)
	ctx := context.Background()
	input := &usecase.SubscriberInput{Email: strPtr(" a@example.se "), Latitude: 59, Longitude: 17}

	f.classifier.EXPECT().Classify(ctx, 59, 17).Return("Uppland", nil)

	var created *entity.Subscriber
	f.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Subscriber")).
		Run(func(_ context.Context, subscriber *entity.Subscriber) {
			created = subscriber
		}).
		Return(nil)

	subscriber, err := f.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created, subscriber)
	assert.NotEqual(t, uuid.Nil, subscriber.ID)
	assert.Equal(t, "a@example.se", *subscriber.Email)
	assert.Nil(t, subscriber.Phone)
	assert.Equal(t, "Uppland", subscriber.TrafficArea)
	assert.Equal(t, testRegisteredAt, subscriber.LastSeenAt)
}

func TestSubscriberService_Register_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     *usecase.SubscriberInput
		setupMock func(ctx context.Context, f *subscriberFixture)
		wantErr   error
	}{
		{
			name:    "missing contact",
			input:   &usecase.SubscriberInput{Email: strPtr("  "), Latitude: 59, Longitude: 17},
			wantErr: domainerrors.ErrMissingContact,
		},
		{
			name:  "no covering area",
			input: &usecase.SubscriberInput{Phone: strPtr("+46701234567"), Latitude: 0, Longitude: 0},
			setupMock: func(ctx context.Context, f *subscriberFixture) {
				f.classifier.EXPECT().Classify(ctx, 0, 0).Return("", domainerrors.ErrAreaNotFound)
			},
			wantErr: domainerrors.ErrAreaNotFound,
		},
		{
			name:  "lookup transport failure",
			input: &usecase.SubscriberInput{Phone: strPtr("+46701234567"), Latitude: 59, Longitude: 17},
			setupMock: func(ctx context.Context, f *subscriberFixture) {
				f.classifier.EXPECT().Classify(ctx, 59, 17).Return("", errors.New("dial tcp: i/o timeout"))
			},
			wantErr: domainerrors.ErrAreaLookupFailed,
		},
		{
			name:  "already registered",
			input: &usecase.SubscriberInput{Email: strPtr("a@example.se"), Latitude: 59, Longitude: 17},
			setupMock: func(ctx context.Context, f *subscriberFixture) {
				f.classifier.EXPECT().Classify(ctx, 59, 17).Return("Uppland", nil)
				f.repo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateSubscriber)
			},
			wantErr: domainerrors.ErrSubscriberAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestSubscriberService(t)
			ctx := context.Background()
			if tt.setupMock != nil {
				tt.setupMock(ctx, f)
			}

			subscriber, err := f.service.Register(ctx, tt.input)

			assert.Nil(t, subscriber)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubscriberService_UpdateLocation_Success(t *testing.T) {
	f := createTestSubscriberService(t)
	ctx := context.Background()
	input := &usecase.SubscriberInput{Phone: strPtr("+46701234567"), Latitude: 60, Longitude: 17}
	identity := entity.NewSubscriberIdentity(nil, input.Phone)
	stored := &entity.Subscriber{ID: uuid.New(), Phone: input.Phone, Latitude: 60, Longitude: 17, TrafficArea: "Gävleborg"}

	f.classifier.EXPECT().Classify(ctx, 60, 17).Return("Gävleborg", nil)
	f.expectTransaction(ctx)
	f.repo.EXPECT().FindByIdentity(ctx, identity).Return(stored, nil).Times(2)
	f.repo.EXPECT().UpdateLocation(ctx, identity, 60, 17, "Gävleborg", testRegisteredAt).Return(nil)

	subscriber, err := f.service.UpdateLocation(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, stored, subscriber)
}

func TestSubscriberService_UpdateLocation_NotFound(t *testing.T) {
	f := createTestSubscriberService(t)
	ctx := context.Background()
	input := &usecase.SubscriberInput{Email: strPtr("a@example.se"), Latitude: 59, Longitude: 17}
	identity := entity.NewSubscriberIdentity(input.Email, nil)

	f.classifier.EXPECT().Classify(ctx, 59, 17).Return("Uppland", nil)
	f.expectTransaction(ctx)
	f.repo.EXPECT().FindByIdentity(ctx, identity).Return(nil, repository.ErrSubscriberNotFound)

	subscriber, err := f.service.UpdateLocation(ctx, input)

	assert.Nil(t, subscriber)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriberNotFound)
	f.repo.AssertNotCalled(t, "UpdateLocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriberService_UpdateLocation_SplitIdentityWritesNothing(t *testing.T) {
	f := createTestSubscriberService(t)
	ctx := context.Background()
	input := &usecase.SubscriberInput{Email: strPtr("a@example.se"), Phone: strPtr("+46709999999"), Latitude: 59, Longitude: 17}
	identity := entity.NewSubscriberIdentity(input.Email, input.Phone)

	f.classifier.EXPECT().Classify(ctx, 59, 17).Return("Uppland", nil)
	f.expectTransaction(ctx)
	f.repo.EXPECT().FindByIdentity(ctx, identity).Return(nil, repository.ErrAmbiguousIdentity)

	subscriber, err := f.service.UpdateLocation(ctx, input)

	assert.Nil(t, subscriber)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityConflict)
	f.repo.AssertNotCalled(t, "UpdateLocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriberService_UpdateLocation_ClassifyFailureWritesNothing(t *testing.T) {
	f := createTestSubscriberService(t)
	ctx := context.Background()
	input := &usecase.SubscriberInput{Email: strPtr("a@example.se"), Latitude: 10, Longitude: 10}

	f.classifier.EXPECT().Classify(ctx, 10, 10).Return("", domainerrors.ErrAreaNotFound)

	subscriber, err := f.service.UpdateLocation(ctx, input)

	assert.Nil(t, subscriber)
	assert.ErrorIs(t, err, domainerrors.ErrAreaNotFound)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestSubscriberService_Unsubscribe(t *testing.T) {
	t.Run("removes and returns the record", func(t *testing.T) {
		f := createTestSubscriberService(t)
		ctx := context.Background()
		input := &usecase.ContactInput{Email: strPtr("a@example.se")}
		identity := entity.NewSubscriberIdentity(input.Email, nil)
		stored := &entity.Subscriber{ID: uuid.New(), Email: input.Email, TrafficArea: "Uppland"}

		f.expectTransaction(ctx)
		f.repo.EXPECT().FindByIdentity(ctx, identity).Return(stored, nil)
		f.repo.EXPECT().Remove(ctx, identity).Return(nil)

		subscriber, err := f.service.Unsubscribe(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, stored, subscriber)
	})

	t.Run("unknown subscriber", func(t *testing.T) {
		f := createTestSubscriberService(t)
		ctx := context.Background()
		input := &usecase.ContactInput{Phone: strPtr("+46701234567")}

		f.expectTransaction(ctx)
		f.repo.EXPECT().FindByIdentity(ctx, entity.NewSubscriberIdentity(nil, input.Phone)).
			Return(nil, repository.ErrSubscriberNotFound)

		subscriber, err := f.service.Unsubscribe(ctx, input)

		assert.Nil(t, subscriber)
		assert.ErrorIs(t, err, domainerrors.ErrSubscriberNotFound)
	})

	t.Run("email and phone of different subscribers removes nothing", func(t *testing.T) {
		f := createTestSubscriberService(t)
		ctx := context.Background()
		input := &usecase.ContactInput{Email: strPtr("a@example.se"), Phone: strPtr("+46709999999")}

		f.expectTransaction(ctx)
		f.repo.EXPECT().FindByIdentity(ctx, entity.NewSubscriberIdentity(input.Email, input.Phone)).
			Return(nil, repository.ErrAmbiguousIdentity)

		subscriber, err := f.service.Unsubscribe(ctx, input)

		assert.Nil(t, subscriber)
		assert.ErrorIs(t, err, domainerrors.ErrIdentityConflict)
		f.repo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("missing contact", func(t *testing.T) {
		f := createTestSubscriberService(t)

		subscriber, err := f.service.Unsubscribe(context.Background(), &usecase.ContactInput{})

		assert.Nil(t, subscriber)
		assert.ErrorIs(t, err, domainerrors.ErrMissingContact)
	})
}

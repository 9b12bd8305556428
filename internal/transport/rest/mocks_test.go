package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
	"github.com/heartmarshall/kanjilens-backend/internal/service/auth"
	"github.com/heartmarshall/kanjilens-backend/internal/service/review"
	"github.com/heartmarshall/kanjilens-backend/internal/service/text"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginWithGoogleFunc   func(ctx context.Context, input auth.GoogleLoginInput) (*auth.AuthResult, error)
	LoginWithPasswordFunc func(ctx context.Context, input auth.LoginPasswordInput) (*auth.AuthResult, error)
	MeFunc                func(ctx context.Context) (*domain.User, error)
	RegisterFunc          func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)

	calls struct {
		LoginWithGoogle []struct {
			Ctx   context.Context
			Input auth.GoogleLoginInput
		}
		LoginWithPassword []struct {
			Ctx   context.Context
			Input auth.LoginPasswordInput
		}
		Me []struct {
			Ctx context.Context
		}
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
	}
	lockLoginWithGoogle   sync.RWMutex
	lockLoginWithPassword sync.RWMutex
	lockMe                sync.RWMutex
	lockRegister          sync.RWMutex
}

func (mock *authServiceMock) LoginWithGoogle(ctx context.Context, input auth.GoogleLoginInput) (*auth.AuthResult, error) {
	if mock.LoginWithGoogleFunc == nil {
		panic("authServiceMock.LoginWithGoogleFunc: method is nil but authService.LoginWithGoogle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.GoogleLoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLoginWithGoogle.Lock()
	mock.calls.LoginWithGoogle = append(mock.calls.LoginWithGoogle, callInfo)
	mock.lockLoginWithGoogle.Unlock()
	return mock.LoginWithGoogleFunc(ctx, input)
}

func (mock *authServiceMock) LoginWithGoogleCalls() []struct {
	Ctx   context.Context
	Input auth.GoogleLoginInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.GoogleLoginInput
	}
	mock.lockLoginWithGoogle.RLock()
	calls = mock.calls.LoginWithGoogle
	mock.lockLoginWithGoogle.RUnlock()
	return calls
}

func (mock *authServiceMock) LoginWithPassword(ctx context.Context, input auth.LoginPasswordInput) (*auth.AuthResult, error) {
	if mock.LoginWithPasswordFunc == nil {
		panic("authServiceMock.LoginWithPasswordFunc: method is nil but authService.LoginWithPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginPasswordInput
	}{Ctx: ctx, Input: input}
	mock.lockLoginWithPassword.Lock()
	mock.calls.LoginWithPassword = append(mock.calls.LoginWithPassword, callInfo)
	mock.lockLoginWithPassword.Unlock()
	return mock.LoginWithPasswordFunc(ctx, input)
}

func (mock *authServiceMock) LoginWithPasswordCalls() []struct {
	Ctx   context.Context
	Input auth.LoginPasswordInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.LoginPasswordInput
	}
	mock.lockLoginWithPassword.RLock()
	calls = mock.calls.LoginWithPassword
	mock.lockLoginWithPassword.RUnlock()
	return calls
}

func (mock *authServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockMe.RLock()
	calls = mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}
	mock.lockRegister.RLock()
	calls = mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

var _ reviewService = &reviewServiceMock{}

type reviewServiceMock struct {
	DueQueueFunc     func(ctx context.Context, input review.DueQueueInput) ([]domain.ReviewItem, error)
	GetOrDefaultFunc func(ctx context.Context, userID uuid.UUID, kanji string) (domain.SchedulingState, error)
	RecordReviewFunc func(ctx context.Context, input review.RecordReviewInput) (*domain.ReviewItem, error)
	StatsFunc        func(ctx context.Context, userID uuid.UUID, now time.Time) (domain.ReviewStats, error)

	calls struct {
		DueQueue []struct {
			Ctx   context.Context
			Input review.DueQueueInput
		}
		GetOrDefault []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Kanji  string
		}
		RecordReview []struct {
			Ctx   context.Context
			Input review.RecordReviewInput
		}
		Stats []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Now    time.Time
		}
	}
	lockDueQueue     sync.RWMutex
	lockGetOrDefault sync.RWMutex
	lockRecordReview sync.RWMutex
	lockStats        sync.RWMutex
}

func (mock *reviewServiceMock) DueQueue(ctx context.Context, input review.DueQueueInput) ([]domain.ReviewItem, error) {
	if mock.DueQueueFunc == nil {
		panic("reviewServiceMock.DueQueueFunc: method is nil but reviewService.DueQueue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.DueQueueInput
	}{Ctx: ctx, Input: input}
	mock.lockDueQueue.Lock()
	mock.calls.DueQueue = append(mock.calls.DueQueue, callInfo)
	mock.lockDueQueue.Unlock()
	return mock.DueQueueFunc(ctx, input)
}

func (mock *reviewServiceMock) DueQueueCalls() []struct {
	Ctx   context.Context
	Input review.DueQueueInput
} {
	var calls []struct {
		Ctx   context.Context
		Input review.DueQueueInput
	}
	mock.lockDueQueue.RLock()
	calls = mock.calls.DueQueue
	mock.lockDueQueue.RUnlock()
	return calls
}

func (mock *reviewServiceMock) GetOrDefault(ctx context.Context, userID uuid.UUID, kanji string) (domain.SchedulingState, error) {
	if mock.GetOrDefaultFunc == nil {
		panic("reviewServiceMock.GetOrDefaultFunc: method is nil but reviewService.GetOrDefault was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Kanji  string
	}{Ctx: ctx, UserID: userID, Kanji: kanji}
	mock.lockGetOrDefault.Lock()
	mock.calls.GetOrDefault = append(mock.calls.GetOrDefault, callInfo)
	mock.lockGetOrDefault.Unlock()
	return mock.GetOrDefaultFunc(ctx, userID, kanji)
}

func (mock *reviewServiceMock) GetOrDefaultCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Kanji  string
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Kanji  string
	}
	mock.lockGetOrDefault.RLock()
	calls = mock.calls.GetOrDefault
	mock.lockGetOrDefault.RUnlock()
	return calls
}

func (mock *reviewServiceMock) RecordReview(ctx context.Context, input review.RecordReviewInput) (*domain.ReviewItem, error) {
	if mock.RecordReviewFunc == nil {
		panic("reviewServiceMock.RecordReviewFunc: method is nil but reviewService.RecordReview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.RecordReviewInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordReview.Lock()
	mock.calls.RecordReview = append(mock.calls.RecordReview, callInfo)
	mock.lockRecordReview.Unlock()
	return mock.RecordReviewFunc(ctx, input)
}

func (mock *reviewServiceMock) RecordReviewCalls() []struct {
	Ctx   context.Context
	Input review.RecordReviewInput
} {
	var calls []struct {
		Ctx   context.Context
		Input review.RecordReviewInput
	}
	mock.lockRecordReview.RLock()
	calls = mock.calls.RecordReview
	mock.lockRecordReview.RUnlock()
	return calls
}

func (mock *reviewServiceMock) Stats(ctx context.Context, userID uuid.UUID, now time.Time) (domain.ReviewStats, error) {
	if mock.StatsFunc == nil {
		panic("reviewServiceMock.StatsFunc: method is nil but reviewService.Stats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
	}{Ctx: ctx, UserID: userID, Now: now}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, userID, now)
}

func (mock *reviewServiceMock) StatsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Now    time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
	}
	mock.lockStats.RLock()
	calls = mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

var _ textService = &textServiceMock{}

type textServiceMock struct {
	AnnotateFunc    func(ctx context.Context, input text.AnnotateInput) (*domain.Annotation, error)
	LookupKanjiFunc func(ctx context.Context, kanji string) (*domain.KanjiInfo, error)

	calls struct {
		Annotate []struct {
			Ctx   context.Context
			Input text.AnnotateInput
		}
		LookupKanji []struct {
			Ctx   context.Context
			Kanji string
		}
	}
	lockAnnotate    sync.RWMutex
	lockLookupKanji sync.RWMutex
}

func (mock *textServiceMock) Annotate(ctx context.Context, input text.AnnotateInput) (*domain.Annotation, error) {
	if mock.AnnotateFunc == nil {
		panic("textServiceMock.AnnotateFunc: method is nil but textService.Annotate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input text.AnnotateInput
	}{Ctx: ctx, Input: input}
	mock.lockAnnotate.Lock()
	mock.calls.Annotate = append(mock.calls.Annotate, callInfo)
	mock.lockAnnotate.Unlock()
	return mock.AnnotateFunc(ctx, input)
}

func (mock *textServiceMock) AnnotateCalls() []struct {
	Ctx   context.Context
	Input text.AnnotateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input text.AnnotateInput
	}
	mock.lockAnnotate.RLock()
	calls = mock.calls.Annotate
	mock.lockAnnotate.RUnlock()
	return calls
}

func (mock *textServiceMock) LookupKanji(ctx context.Context, kanji string) (*domain.KanjiInfo, error) {
	if mock.LookupKanjiFunc == nil {
		panic("textServiceMock.LookupKanjiFunc: method is nil but textService.LookupKanji was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Kanji string
	}{Ctx: ctx, Kanji: kanji}
	mock.lockLookupKanji.Lock()
	mock.calls.LookupKanji = append(mock.calls.LookupKanji, callInfo)
	mock.lockLookupKanji.Unlock()
	return mock.LookupKanjiFunc(ctx, kanji)
}

func (mock *textServiceMock) LookupKanjiCalls() []struct {
	Ctx   context.Context
	Kanji string
} {
	var calls []struct {
		Ctx   context.Context
		Kanji string
	}
	mock.lockLookupKanji.RLock()
	calls = mock.calls.LookupKanji
	mock.lockLookupKanji.RUnlock()
	return calls
}

package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kanjilens-backend/internal/auth"
	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc         func(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.User, error)
	GetByGoogleSubFunc func(ctx context.Context, sub string) (*domain.User, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	LinkGoogleFunc     func(ctx context.Context, id uuid.UUID, sub string) (*domain.User, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			U   domain.User
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByGoogleSub []struct {
			Ctx context.Context
			Sub string
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		LinkGoogle []struct {
			Ctx context.Context
			Id  uuid.UUID
			Sub string
		}
	}
	lockCreate         sync.RWMutex
	lockGetByEmail     sync.RWMutex
	lockGetByGoogleSub sync.RWMutex
	lockGetByID        sync.RWMutex
	lockLinkGoogle     sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{Ctx: ctx, U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   domain.User
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGetByEmail.RLock()
	calls = mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByGoogleSub(ctx context.Context, sub string) (*domain.User, error) {
	if mock.GetByGoogleSubFunc == nil {
		panic("userRepoMock.GetByGoogleSubFunc: method is nil but userRepo.GetByGoogleSub was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sub string
	}{Ctx: ctx, Sub: sub}
	mock.lockGetByGoogleSub.Lock()
	mock.calls.GetByGoogleSub = append(mock.calls.GetByGoogleSub, callInfo)
	mock.lockGetByGoogleSub.Unlock()
	return mock.GetByGoogleSubFunc(ctx, sub)
}

func (mock *userRepoMock) GetByGoogleSubCalls() []struct {
	Ctx context.Context
	Sub string
} {
	var calls []struct {
		Ctx context.Context
		Sub string
	}
	mock.lockGetByGoogleSub.RLock()
	calls = mock.calls.GetByGoogleSub
	mock.lockGetByGoogleSub.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) LinkGoogle(ctx context.Context, id uuid.UUID, sub string) (*domain.User, error) {
	if mock.LinkGoogleFunc == nil {
		panic("userRepoMock.LinkGoogleFunc: method is nil but userRepo.LinkGoogle was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		Sub string
	}{Ctx: ctx, Id: id, Sub: sub}
	mock.lockLinkGoogle.Lock()
	mock.calls.LinkGoogle = append(mock.calls.LinkGoogle, callInfo)
	mock.lockLinkGoogle.Unlock()
	return mock.LinkGoogleFunc(ctx, id, sub)
}

func (mock *userRepoMock) LinkGoogleCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	Sub string
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
		Sub string
	}
	mock.lockLinkGoogle.RLock()
	calls = mock.calls.LinkGoogle
	mock.lockLinkGoogle.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ idTokenVerifier = &idTokenVerifierMock{}

type idTokenVerifierMock struct {
	VerifyIDTokenFunc func(ctx context.Context, rawToken string) (*auth.OAuthIdentity, error)

	calls struct {
		VerifyIDToken []struct {
			Ctx      context.Context
			RawToken string
		}
	}
	lockVerifyIDToken sync.RWMutex
}

func (mock *idTokenVerifierMock) VerifyIDToken(ctx context.Context, rawToken string) (*auth.OAuthIdentity, error) {
	if mock.VerifyIDTokenFunc == nil {
		panic("idTokenVerifierMock.VerifyIDTokenFunc: method is nil but idTokenVerifier.VerifyIDToken was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RawToken string
	}{Ctx: ctx, RawToken: rawToken}
	mock.lockVerifyIDToken.Lock()
	mock.calls.VerifyIDToken = append(mock.calls.VerifyIDToken, callInfo)
	mock.lockVerifyIDToken.Unlock()
	return mock.VerifyIDTokenFunc(ctx, rawToken)
}

func (mock *idTokenVerifierMock) VerifyIDTokenCalls() []struct {
	Ctx      context.Context
	RawToken string
} {
	var calls []struct {
		Ctx      context.Context
		RawToken string
	}
	mock.lockVerifyIDToken.RLock()
	calls = mock.calls.VerifyIDToken
	mock.lockVerifyIDToken.RUnlock()
	return calls
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessTokenFunc func(token string) (uuid.UUID, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID uuid.UUID
		}
		ValidateAccessToken []struct {
			Token string
		}
	}
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID) (string, time.Time, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
} {
	var calls []struct {
		UserID uuid.UUID
	}
	mock.lockGenerateAccessToken.RLock()
	calls = mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *jwtManagerMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	var calls []struct {
		Token string
	}
	mock.lockValidateAccessToken.RLock()
	calls = mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}

package services

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"user-directory-api/internal/application/ports"
	domain "user-directory-api/internal/domain/user"
	"user-directory-api/internal/infrastructure/mq"
	"user-directory-api/internal/interface/api/rest/dto/user"
	"user-directory-api/pkg/password"
)

const generatedPasswordLen = 8

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUsers(ctx context.Context, f domain.Filter) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx, f)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// CreateUser checks uniqueness, fills in the defaults (hiring date,
// generated password) and persists. The plaintext password exists only
// inside this call; the record keeps a bcrypt hash.
func (us *UserService) CreateUser(ctx context.Context, p domain.Patch) (*domain.User, error) {
	if err := us.checkUnique(ctx, p, 0); err != nil {
		return nil, err
	}

	plain, err := password.Generate(generatedPasswordLen)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	h := string(hash)

	var draft domain.User
	p.Apply(&draft)
	draft.PasswordHash = &h
	if draft.HiringDate == nil {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		draft.HiringDate = &today
	}

	uRet, err := us.userRepository.CreateUser(ctx, draft)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.publish(uRet, mq.ActionUserCreated)
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

// UpdateUser serves both PUT and PATCH: the controller decides how
// strict the validated patch is, the service only applies it.
func (us *UserService) UpdateUser(ctx context.Context, id domain.ID, p domain.Patch) (*domain.User, error) {
	if err := us.checkUnique(ctx, p, id); err != nil {
		return nil, err
	}

	uRet, err := us.userRepository.UpdateUser(ctx, id, p)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.publish(uRet, mq.ActionUserUpdated)
		us.mCounter.WithLabelValues("user_updated_total").Inc()
	}

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id domain.ID) (*domain.User, error) {
	uRet, err := us.userRepository.SoftDeleteUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.publish(uRet, mq.ActionUserDeleted)
		us.mCounter.WithLabelValues("user_deleted_total").Inc()
	}

	return uRet, nil
}

func (us *UserService) RestoreUser(ctx context.Context, id domain.ID) (*domain.User, error) {
	uRet, err := us.userRepository.RestoreUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.publish(uRet, mq.ActionUserRestored)
		us.mCounter.WithLabelValues("user_restored_total").Inc()
	}

	return uRet, nil
}

// checkUnique runs the uniqueness rules for whichever unique fields the
// patch carries, before anything is written. The unique indexes remain
// the last line of defence against concurrent writers.
func (us *UserService) checkUnique(ctx context.Context, p domain.Patch, exclude domain.ID) error {
	errs := make(domain.FieldErrors)

	check := func(field domain.UniqueField, value string) error {
		taken, err := us.userRepository.ValueTaken(ctx, field, value, exclude)
		if err != nil {
			return err
		}
		if taken {
			for f, msg := range domain.TakenError(field) {
				errs[f] = msg
			}
		}
		return nil
	}

	if p.Username != nil {
		if err := check(domain.FieldUsername, *p.Username); err != nil {
			return err
		}
	}
	if p.Email != nil {
		if err := check(domain.FieldEmail, *p.Email); err != nil {
			return err
		}
	}
	if p.DUI.Set && p.DUI.Valid {
		if err := check(domain.FieldDUI, p.DUI.Value); err != nil {
			return err
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (us *UserService) publish(u *domain.User, action string) {
	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		UserID:  strconv.FormatUint(uint64(u.ID), 10),
		Payload: user.ToResponseUser(*u),
	}
}

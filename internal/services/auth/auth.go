// Package auth содержит логику бизнес-уровня для регистрации пользователей
// и проверки учётных данных.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdoshkin/credential-service/internal/lib/password"
	"github.com/avdoshkin/credential-service/internal/models"
	"github.com/avdoshkin/credential-service/internal/storage"
)

// ErrUsernameTaken возвращается из Register, если имя пользователя уже занято.
// Это ожидаемый исход, а не сбой.
var ErrUsernameTaken = errors.New("username already taken")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, username, passwordHash string) (int64, error)

	// GetUserByUsername возвращает пользователя по имени
	// или storage.ErrUserNotFound, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// dummyHash — валидный bcrypt-хэш со стоимостью по умолчанию. Когда
// пользователь не найден, проверка пароля выполняется против этого хэша,
// чтобы путь отказа стоил столько же, сколько проверка реального пароля:
// по времени ответа нельзя отличить "нет пользователя" от "неверный пароль".
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService отвечает за регистрацию и аутентификацию пользователей.
type AuthService struct {
	users    UserRepository
	hashCost int
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, hashCost int) *AuthService {
	return &AuthService{
		users:    users,
		hashCost: hashCost,
	}
}

// Register создает нового пользователя с хэшированием пароля и возвращает его ID.
// Дубликаты имён разрешает уникальный индекс в базе, а не проверка в приложении:
// при конкурентных регистрациях одного имени ровно одна завершается успехом,
// остальные получают ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, rawPassword string) (int64, error) {
	const op = "services.auth.Register"
	hashed, err := password.GetHash(rawPassword, s.hashCost)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id, err := s.users.RegisterUser(ctx, username, hashed)
	if err != nil {
		if errors.Is(err, storage.ErrUsernameTaken) {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Authenticate проверяет пару username/password. Возвращает true при
// совпадении пароля и false при любом несовпадении; отсутствие пользователя
// и неверный пароль дают одинаковый результат. Ошибка возвращается только
// при сбое хранилища.
func (s *AuthService) Authenticate(ctx context.Context, username, rawPassword string) (bool, error) {
	const op = "services.auth.Authenticate"
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			_ = password.CompareHash(dummyHash, rawPassword)
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return false, nil
	}
	return true, nil
}

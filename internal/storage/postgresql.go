// Package storage реализует хранилище пользователей на основе PostgreSQL.
// Предоставляет методы регистрации и чтения учётных записей; записи
// пользователей никогда не обновляются и не удаляются.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища. Коды ошибок конкретной СУБД транслируются
// в именованные значения, чтобы вызывающий код не зависел от бэкенда.
var (
	// ErrUsernameTaken возвращается при нарушении уникального индекса username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserNotFound возвращается, если пользователь с таким именем не найден.
	ErrUserNotFound = errors.New("user not found")
)

// Storage инкапсулирует пул соединений с базой данных PostgreSQL.
// Пул потокобезопасен и ограничен, соединение возвращается в пул
// на каждом пути выхода средствами database/sql.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

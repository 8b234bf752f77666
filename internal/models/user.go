// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           int64     // Идентификатор, выдаваемый базой данных
	Username     string    // Имя пользователя (уникальное)
	PasswordHash string    // bcrypt-хэш пароля, никогда не отдается наружу
	CreatedAt    time.Time // Дата создания записи
}

// Package validation реализует проверки форм с локализованными сообщениями.
//
// Порядок проверок на каждом экране фиксирован и значим: первая неудачная
// проверка формирует сообщение и прерывает отправку, ошибки не
// накапливаются. Элементарные проверки выполняет go-playground/validator,
// порядок и тексты задаёт этот пакет.
package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/academy-gateway/internal/locale"
)

// Возрастные границы регистрации, включительно.
const (
	MinAge = 10
	MaxAge = 60
)

var validate = validator.New()

func failed(field any, tag string) bool {
	return validate.Var(field, tag) != nil
}

// LoginForm — поля формы входа.
type LoginForm struct {
	Email    string
	Password string
}

// ValidateLogin возвращает локализованное сообщение первой неудачной
// проверки или пустую строку.
func ValidateLogin(f LoginForm) string {
	switch {
	case failed(f.Email, "required"):
		return locale.ErrEmailRequired
	case failed(f.Password, "required"):
		return locale.ErrPasswordRequired
	case failed(f.Email, "email"):
		return locale.ErrEmailInvalid
	case failed(f.Password, "min=6"):
		return locale.ErrPasswordTooShort
	}
	return ""
}

// RegisterForm — поля формы регистрации. Дата рождения приходит тремя
// отдельными полями селекторов.
type RegisterForm struct {
	DisplayName     string
	UserName        string
	Day             string
	Month           string
	Year            string
	Gender          string
	Phone           string
	Country         string
	City            string
	Region          string
	Email           string
	Password        string
	ConfirmPassword string
}

// DateOfBirth собирает дату рождения в формат бэкенда YYYY-MM-DD.
func (f RegisterForm) DateOfBirth() string {
	if f.Day == "" || f.Month == "" || f.Year == "" {
		return ""
	}
	day := f.Day
	if len(day) < 2 {
		day = "0" + day
	}
	month := f.Month
	if len(month) < 2 {
		month = "0" + month
	}
	return f.Year + "-" + month + "-" + day
}

// ValidateRegister проверяет форму регистрации в фиксированном порядке:
// логин, телефон, дата рождения и возраст, пол, страна, город, почта,
// пароль и его подтверждение.
func ValidateRegister(f RegisterForm, now time.Time) string {
	switch {
	case failed(strings.TrimSpace(f.UserName), "required"):
		return locale.ErrUsernameRequired
	case failed(f.UserName, "alphanum"):
		return locale.ErrUsernameCharset
	case failed(strings.TrimSpace(f.Phone), "required"):
		return locale.ErrPhoneRequired
	case failed(f.Phone, "numeric"):
		return locale.ErrPhoneDigitsOnly
	case failed(f.Phone, "min=7,max=15"):
		return locale.ErrPhoneLength
	}

	birth, ok := parseBirthDate(f.Day, f.Month, f.Year)
	if !ok {
		return locale.ErrBirthDateRequired
	}
	// Верхняя граница строгая к дню: на следующий день после 60-летия
	// регистрация уже закрыта. Сравнение по календарному дню, без учёта
	// времени суток в now.
	oldest := time.Date(now.Year()-MaxAge, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if Age(birth, now) < MinAge || birth.Before(oldest) {
		return locale.ErrAgeRange
	}

	switch {
	case f.Gender != "male" && f.Gender != "female":
		return locale.ErrGenderRequired
	case failed(f.Country, "required"):
		return locale.ErrCountryRequired
	case failed(f.City, "required"):
		return locale.ErrCityRequired
	case failed(strings.TrimSpace(f.Email), "required"):
		return locale.ErrEmailRequired
	case failed(f.Email, "email"):
		return locale.ErrEmailInvalid
	case failed(f.Password, "required"):
		return locale.ErrPasswordRequired
	case failed(f.Password, "min=6"):
		return locale.ErrPasswordTooShort
	case f.Password != f.ConfirmPassword:
		return locale.ErrPasswordMismatch
	}
	return ""
}

// ForgotForm — первый шаг восстановления пароля.
type ForgotForm struct {
	Email string
}

// ValidateForgot проверяет адрес, на который будет отправлен код.
func ValidateForgot(f ForgotForm) string {
	switch {
	case failed(strings.TrimSpace(f.Email), "required"):
		return locale.ErrEmailRequired
	case failed(f.Email, "email"):
		return locale.ErrEmailInvalid
	}
	return ""
}

// ResetForm — второй шаг восстановления пароля.
type ResetForm struct {
	OTP             string
	Password        string
	ConfirmPassword string
}

// ValidateReset проверяет код подтверждения и новый пароль.
func ValidateReset(f ResetForm) string {
	switch {
	case failed(strings.TrimSpace(f.OTP), "required"):
		return locale.ErrOTPRequired
	case failed(f.OTP, "numeric,len=6"):
		return locale.ErrOTPFormat
	case failed(f.Password, "required"):
		return locale.ErrNewPasswordRequired
	case failed(f.Password, "min=6"):
		return locale.ErrPasswordTooShort
	case f.Password != f.ConfirmPassword:
		return locale.ErrResetMismatch
	}
	return ""
}

// SanitizeUsername удаляет из логина всё, кроме латинских букв и цифр.
// Второе значение — встречались ли недопустимые символы.
func SanitizeUsername(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	return clean, clean != raw
}

// SanitizePhone удаляет из телефона всё, кроме цифр.
func SanitizePhone(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	return clean, clean != raw
}

// Age вычисляет полный возраст календарно: годовая разница уменьшается,
// если день рождения в текущем году ещё не наступил.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// parseBirthDate собирает дату из селекторов. Несуществующая дата
// (например, 30 февраля) отклоняется сравнением с нормализованной.
func parseBirthDate(day, month, year string) (time.Time, bool) {
	d, err1 := strconv.Atoi(day)
	m, err2 := strconv.Atoi(month)
	y, err3 := strconv.Atoi(year)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	birth := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if birth.Year() != y || birth.Month() != time.Month(m) || birth.Day() != d {
		return time.Time{}, false
	}
	return birth, true
}

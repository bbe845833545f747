package web

import (
	"strings"

	"github.com/magabrotheeeer/academy-gateway/internal/locale"
	"github.com/magabrotheeeer/academy-gateway/internal/models"
	"github.com/magabrotheeeer/academy-gateway/internal/refdata"
	"github.com/magabrotheeeer/academy-gateway/internal/validation"
)

// Month — месяц в селекторе даты рождения.
type Month struct {
	Value string
	Label string
}

// Months — арабские названия месяцев в порядке показа.
var Months = []Month{
	{"1", "يناير"}, {"2", "فبراير"}, {"3", "مارس"}, {"4", "أبريل"},
	{"5", "مايو"}, {"6", "يونيو"}, {"7", "يوليو"}, {"8", "أغسطس"},
	{"9", "سبتمبر"}, {"10", "أكتوبر"}, {"11", "نوفمبر"}, {"12", "ديسمبر"},
}

// LoginView — данные экрана входа.
type LoginView struct {
	Email string
	Error string
}

// RegisterView — данные экрана регистрации.
type RegisterView struct {
	Form      validation.RegisterForm
	Error     string
	Warning   string
	Countries []refdata.Country
	Months    []Month
}

// NewRegisterView возвращает RegisterView с заполненными справочниками.
func NewRegisterView(f validation.RegisterForm) RegisterView {
	return RegisterView{
		Form:      f,
		Countries: refdata.Countries,
		Months:    Months,
	}
}

// ForgotView — данные обоих шагов восстановления пароля.
type ForgotView struct {
	Step      models.ResetStep
	Email     string
	Error     string
	Info      string
	Success   bool
	Countdown int
}

// StepReset сообщает, показывать ли второй шаг (OTP и новый пароль).
func (v ForgotView) StepReset() bool {
	return v.Step == models.StepReset
}

// ProfileView — данные экрана профиля.
type ProfileView struct {
	User    *models.User
	IsAdmin bool
	// WhatsApp — номер поддержки без плюса, формат ссылок wa.me.
	WhatsApp string
}

// NewProfileView возвращает ProfileView с телефоном поддержки.
func NewProfileView(u *models.User) ProfileView {
	return ProfileView{
		User:     u,
		IsAdmin:  u.IsAdmin(),
		WhatsApp: strings.TrimPrefix(locale.SupportPhone, "+"),
	}
}

// BannedView — данные экрана заблокированного аккаунта.
type BannedView struct {
	SupportPhone string
}

// Course — учебный курс в каталоге.
type Course struct {
	Name        string
	Description string
}

// CoursesView — данные каталога курсов.
type CoursesView struct {
	Courses []Course
}

// FrontendCourses — каталог курсов направления Frontend.
var FrontendCourses = []Course{
	{Name: "HTML"}, {Name: "CSS"}, {Name: "JavaScript"},
	{Name: "Node.js"}, {Name: "TypeScript"}, {Name: "Tailwind CSS"},
	{Name: "Bootstrap"}, {Name: "React JS"}, {Name: "Next JS"},
	{Name: "Axios"}, {Name: "i18next"}, {Name: "React Icons"},
	{Name: "Framer Motion"}, {Name: "Redux"}, {Name: "Git & GitHub"},
}

// UsersView — данные экрана управления пользователями.
type UsersView struct {
	Users  []models.User
	Total  int
	Filter models.FilterCriteria
	Cities []string
	// Selected — пользователь, открытый в карточке деталей, или nil.
	Selected *models.User
	Error    string
	// ReturnQuery — строка запроса текущих фильтров; подставляется в
	// скрытое поле формы переключения блокировки, чтобы после
	// редиректа фильтры сохранились.
	ReturnQuery string
}

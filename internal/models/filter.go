package models

// FilterAll — значение категориального фильтра «показывать всё».
const FilterAll = "all"

// FilterCriteria — критерии фильтрации административного списка пользователей.
// Search сопоставляется как подстрока без учёта регистра с логином, почтой
// и отображаемым именем; остальные поля — точное совпадение либо FilterAll.
type FilterCriteria struct {
	Search   string
	Role     string
	Verified string
	Banned   string
	Deleted  string
	Gender   string
	City     string
}

// DefaultFilter возвращает критерии, пропускающие всех пользователей.
func DefaultFilter() FilterCriteria {
	return FilterCriteria{
		Role:     FilterAll,
		Verified: FilterAll,
		Banned:   FilterAll,
		Deleted:  FilterAll,
		Gender:   FilterAll,
		City:     FilterAll,
	}
}

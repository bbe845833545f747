// Package refdata содержит сокращённый справочник стран и городов для
// селекторов формы регистрации. Полный справочник живёт на стороне сайта
// и шлюзом не проверяется: валидация требует лишь непустых значений.
package refdata

// Country — страна и её города.
type Country struct {
	Name   string
	Cities []string
}

// Countries — страны в порядке показа в селекторе.
var Countries = []Country{
	{Name: "مصر", Cities: []string{"القاهرة", "الجيزة", "الإسكندرية", "المنصورة", "طنطا", "أسيوط", "الأقصر", "أسوان"}},
	{Name: "السعودية", Cities: []string{"الرياض", "جدة", "مكة المكرمة", "المدينة المنورة", "الدمام"}},
	{Name: "الإمارات", Cities: []string{"دبي", "أبوظبي", "الشارقة", "عجمان"}},
	{Name: "الأردن", Cities: []string{"عمان", "إربد", "الزرقاء", "العقبة"}},
	{Name: "الكويت", Cities: []string{"مدينة الكويت", "حولي", "الفروانية"}},
	{Name: "قطر", Cities: []string{"الدوحة", "الريان", "الوكرة"}},
	{Name: "المغرب", Cities: []string{"الرباط", "الدار البيضاء", "فاس", "مراكش", "طنجة"}},
	{Name: "الجزائر", Cities: []string{"الجزائر العاصمة", "وهران", "قسنطينة"}},
	{Name: "تونس", Cities: []string{"تونس العاصمة", "صفاقس", "سوسة"}},
	{Name: "العراق", Cities: []string{"بغداد", "البصرة", "الموصل", "أربيل"}},
}

// AllCities возвращает города всех стран в порядке справочника.
// Используется селектором фильтра в административном списке.
func AllCities() []string {
	var out []string
	for _, c := range Countries {
		out = append(out, c.Cities...)
	}
	return out
}

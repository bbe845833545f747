// Package locale содержит арабские строки интерфейса.
//
// Тексты перенесены из продакшен-копии сайта без изменений, включая номер
// поддержки внутри сообщений об ошибках. Все пользовательские сообщения
// шлюза берутся отсюда, чтобы обработчики не содержали строковых литералов.
package locale

// Сообщения валидации форм.
const (
	ErrEmailRequired    = "البريد الإلكتروني مطلوب"
	ErrEmailInvalid     = "البريد الإلكتروني غير صحيح"
	ErrPasswordRequired = "كلمة المرور مطلوبة"
	ErrPasswordTooShort = "كلمة المرور يجب أن تكون 6 أحرف على الأقل"
	ErrPasswordMismatch = "كلمة المرور وتأكيدها غير متطابقين"

	ErrUsernameRequired  = "اسم المستخدم مطلوب"
	ErrUsernameCharset   = "اسم المستخدم يجب أن يحتوي على أحرف إنجليزية وأرقام فقط"
	ErrPhoneRequired     = "رقم الهاتف مطلوب"
	ErrPhoneDigitsOnly   = "رقم الهاتف يجب أن يحتوي على أرقام فقط"
	ErrPhoneLength       = "رقم الهاتف يجب أن يكون بين 7 و 15 رقم"
	ErrBirthDateRequired = "تاريخ الميلاد مطلوب"
	ErrAgeRange          = "يجب أن يكون العمر بين 10 و 60 سنة"
	ErrGenderRequired    = "الرجاء اختيار الجنس"
	ErrCountryRequired   = "الدولة مطلوبة"
	ErrCityRequired      = "المدينة مطلوبة"
)

// Сообщения экрана входа и регистрации.
const (
	ErrLoginFailed   = "البريد الإلكتروني أو كلمة المرور غير صحيحة"
	ErrUsernameTaken = "اسم المستخدم موجود بالفعل"
	ErrPhoneTaken    = "رقم الهاتف موجود بالفعل"
	ErrEmailTaken    = "البريد الإلكتروني موجود بالفعل"
)

// Сообщения сценария восстановления пароля.
const (
	MsgOTPSent             = "تم إرسال رمز التحقق إلى بريدك الإلكتروني"
	MsgOTPResent           = "تم إعادة إرسال رمز التحقق"
	MsgResetSuccess        = "تم تغيير كلمة المرور بنجاح! جارِ تحويلك إلى تسجيل الدخول..."
	ErrEmailNotRegistered  = "البريد الإلكتروني غير مسجل"
	ErrSendFailed          = "حدث خطأ أثناء الإرسال. حاول مرة أخرى لاحقاً"
	ErrOTPRequired         = "رمز التحقق مطلوب"
	ErrOTPFormat           = "رمز التحقق يجب أن يكون 6 أرقام"
	ErrNewPasswordRequired = "كلمة المرور الجديدة مطلوبة"
	ErrResetMismatch       = "كلمة المرور وتأكيدها غير متطابقتين"
	ErrInvalidOTP          = "رمز التحقق غير صحيح"
	ErrStartOver           = "حدث خطأ، يرجى البدء من جديد"
	ErrResetFailed         = "حدث خطأ أثناء إعادة التعيين"
)

// Общие сообщения и административный экран.
const (
	ErrGeneric         = "حدث خطأ أثناء التسجيل اتصل بدعم 201093586806+"
	ErrConnection      = "حدث خطأ أثناء الاتصال اتصل بدعم 201093586806+"
	ErrLoadUsersFailed = "فشل تحميل البيانات"
	ErrBanToggleFailed = "حدث خطأ، حاول مرة أخرى"

	SupportPhone = "+201093586806"
)

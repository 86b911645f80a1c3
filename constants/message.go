package constants

const (
	ERROR_INTERNAL_ERROR       = "Serverda xatolik yuz berdi"
	ERROR_INPUT                = "Kiritilgan ma'lumot noto'g'ri"
	ERROR_PARSE_DATA_TO_LOCALS = "Ma'lumotni o'qib bo'lmadi"
	ERROR_CREATE               = "Yaratib bo'lmadi"
	ERROR_EDIT                 = "Tahrirlab bo'lmadi"
	ERROR_DELETE               = "O'chirib bo'lmadi"
	DATA_INPUT_IS_NOT_NUMBER   = "Parametr son bo'lishi kerak"

	MISSING_LOGIN_INPUT     = "Email va parolni kiriting"
	INVALID_EMAIL           = "Bunday email topilmadi"
	INVALID_PASSWORD        = "Parol noto'g'ri"
	ACCOUNT_NOT_ACTIVE      = "Hisob faol emas"
	MISSING_TOKEN           = "Token topilmadi"
	INVALID_TOKEN           = "Token yaroqsiz"
	NOT_PERMISSION          = "Bu amal uchun ruxsat yo'q"
	NOT_ADMIN               = "Faqat administrator uchun"
	EMAIL_EXISTS            = "Bu email allaqachon mavjud"
	ROLE_NOT_EXISTS         = "Bunday rol mavjud emas"
	CAN_NOT_DELETE_SELF     = "O'zingizni o'chira olmaysiz"
	STAFF_NOT_FOUND         = "Xodim topilmadi"
	RESET_TOKEN_INVALID     = "Tiklash havolasi yaroqsiz yoki muddati o'tgan"
	RESET_LINK_SENT         = "Agar email mavjud bo'lsa, tiklash havolasi yuborildi"
	PASSWORD_CHANGED        = "Parol o'zgartirildi"
	WAITER_NOT_FOUND        = "Ofitsiant topilmadi"
	CATEGORY_NOT_FOUND      = "Kategoriya topilmadi"
	CATEGORY_EXISTS         = "Bu nomdagi kategoriya mavjud"
	CATEGORY_IN_USE         = "Kategoriyada taomlar bor, avval ularni o'chiring"
	MENU_ITEM_NOT_FOUND     = "Taom topilmadi"
	SERVINGS_INVALID        = "Qolgan porsiya umumiy porsiyadan oshmasligi kerak"
	IMAGE_UPLOAD_FAILED     = "Rasmni yuklab bo'lmadi"
	CART_EMPTY              = "Savat bo'sh"
	SEAT_REQUIRED           = "Stol yoki xonani tanlang"
	DELIVERY_INFO_REQUIRED  = "Telefon raqami va manzilni kiriting"
	NOT_ENOUGH_SERVINGS     = "Porsiya yetarli emas"
	ITEM_NOT_AVAILABLE      = "Taom hozir mavjud emas"
	SEAT_NOT_AVAILABLE      = "Joy endi bo'sh emas"
	SEAT_NOT_FOUND          = "Joy topilmadi"
	SEAT_EXISTS             = "Bu raqamli joy allaqachon mavjud"
	SEAT_RANGE_CONFLICT     = "Oraliqdagi ba'zi raqamlar allaqachon mavjud"
	SEAT_RANGE_INVALID      = "Oraliq noto'g'ri"
	SEAT_RANGE_TOO_LARGE    = "Bir martada 500 tadan ortiq joy qo'shib bo'lmaydi"
	SEAT_IN_USE             = "Joyda to'lanmagan buyurtma bor"
	SEATING_TYPE_NOT_FOUND  = "Joy turi topilmadi"
	SEATING_TYPE_EXISTS     = "Bu nomdagi joy turi mavjud"
	SEATING_TYPE_IN_USE     = "Bu turdagi joylar mavjud, avval ularni o'chiring"
	ORDER_NOT_FOUND         = "Buyurtma topilmadi"
	ORDER_CREATED           = "Buyurtma qabul qilindi"
	ORDER_ALREADY_PAID      = "Buyurtma to'langan, o'zgartirib bo'lmaydi"
	ORDER_STATUS_INVALID    = "Holat noto'g'ri"
	ORDER_STATUS_BACKWARD   = "Holatni orqaga qaytarib bo'lmaydi"
	ORDER_STATUS_CONFLICT   = "Buyurtma boshqa ekranda o'zgartirildi, yangilang"
	PERIOD_INVALID          = "Davr noto'g'ri: today, week yoki month"
	EXPORT_FAILED           = "Faylni yaratib bo'lmadi"
	ARCHIVE_DONE            = "Eski buyurtmalar arxivlandi"
	SEATING_RESET_DONE      = "Barcha joylar bo'shatildi"
	RECONCILE_DONE          = "Joy turlari soni tekshirildi"
)

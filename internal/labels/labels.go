// Package labels maps backend enum codes to the storefront's Vietnamese
// display strings. Pure presentation data, not part of any store's contract.
package labels

var speciesNames = map[string]string{
	"DOG":     "Chó",
	"CAT":     "Mèo",
	"BIRD":    "Chim",
	"RABBIT":  "Thỏ",
	"HAMSTER": "Hamster",
	"OTHER":   "Khác",
}

var speciesEmoji = map[string]string{
	"DOG":     "🐕",
	"CAT":     "🐱",
	"BIRD":    "🐦",
	"RABBIT":  "🐰",
	"HAMSTER": "🐹",
	"OTHER":   "🐾",
}

var genderNames = map[string]string{
	"MALE":   "Đực",
	"FEMALE": "Cái",
}

var orderStatusNames = map[string]string{
	"PENDING":    "Chờ xử lý",
	"PROCESSING": "Đang xử lý",
	"SHIPPED":    "Đang giao",
	"DELIVERED":  "Đã giao",
	"CANCELLED":  "Đã hủy",
}

var paymentStatusNames = map[string]string{
	"PENDING": "Chưa thanh toán",
	"PAID":    "Đã thanh toán",
	"FAILED":  "Thanh toán thất bại",
}

var appointmentStatusNames = map[string]string{
	"PENDING":   "Chờ xác nhận",
	"CONFIRMED": "Đã xác nhận",
	"COMPLETED": "Hoàn thành",
	"CANCELLED": "Đã hủy",
}

var categoryNames = map[string]string{
	"food":        "Thức ăn",
	"accessories": "Phụ kiện",
	"grooming":    "Grooming",
	"medicine":    "Thuốc & Y tế",
}

func lookup(m map[string]string, code, fallback string) string {
	if label, ok := m[code]; ok {
		return label
	}
	return fallback
}

func Species(code string) string { return lookup(speciesNames, code, code) }

func SpeciesEmoji(code string) string { return lookup(speciesEmoji, code, "🐾") }

func Gender(code string) string { return lookup(genderNames, code, code) }

func OrderStatus(code string) string { return lookup(orderStatusNames, code, code) }

func PaymentStatus(code string) string { return lookup(paymentStatusNames, code, code) }

func AppointmentStatus(code string) string { return lookup(appointmentStatusNames, code, code) }

func Category(code string) string { return lookup(categoryNames, code, code) }

package domain

// Categories is the fixed set of content category labels a user can choose.
// Order matters for presentation; the first entry is the default.
var Categories = []string{
	"ธรรมะทั่วไป",
	"สติปัฏฐาน",
	"เมตตาภาวนา",
	"วิปัสสนา",
	"ศีล สมาธิ ปัญญา",
	"กรรมฐาน",
	"พุทธประวัติ",
	"ชาดก",
	"อริยสัจ 4",
	"มรรคมีองค์ 8",
}

// DefaultCategory is used when the user does not pick one.
const DefaultCategory = "ธรรมะทั่วไป"

func ValidCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}
